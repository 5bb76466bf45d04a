package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

func errorResponse(c *gin.Context, status int, code ErrorCode) {
	c.AbortWithStatusJSON(status, getErrorStruct(code))
}

// serviceErrorResponse maps domain errors to a status and error code.
// Anything unexpected is logged and reported as 500.
func serviceErrorResponse(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownCountry):
		errorResponse(c, http.StatusNotFound, CountryNotFoundCode)
	case errors.Is(err, domain.ErrEmptySelection):
		errorResponse(c, http.StatusNotFound, EmptySelectionCode)
	case errors.Is(err, domain.ErrNotFound):
		errorResponse(c, http.StatusNotFound, ExportNotFoundCode)
	case errors.Is(err, domain.ErrInvalidChartKind):
		errorResponse(c, http.StatusBadRequest, InvalidChartKindCode)
	case errors.Is(err, domain.ErrInvalidFormat):
		errorResponse(c, http.StatusBadRequest, InvalidFormatCode)
	case errors.Is(err, domain.ErrMalformedValue):
		errorResponse(c, http.StatusBadRequest, MalformedDateCode)
	case errors.Is(err, domain.ErrSameCountry):
		errorResponse(c, http.StatusBadRequest, SameCountryCode)
	case errors.Is(err, domain.ErrQueueDisabled):
		errorResponse(c, http.StatusServiceUnavailable, ExportQueueDisabledCode)
	default:
		logger.Error(op+" failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
	}
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    ValidationErrorCode,
			ErrorMessage: err.Error(),
		})
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorStruct{
		ErrorCode:    ValidationErrorCode,
		ErrorMessage: ValidationErrorMessage,
		Errors:       out,
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "isodate":
		return "date must look like 2020-03-01"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", value)
	case "min":
		return fmt.Sprintf("must be at least %v", value)
	case "max":
		return fmt.Sprintf("must be at most %v", value)
	case "uuid":
		return "must be a uuid"
	}
	return tag
}
