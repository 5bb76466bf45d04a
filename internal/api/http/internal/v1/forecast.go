package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initForecastRoutes(api *gin.RouterGroup) {
	api.GET("/forecast", h.getForecast)
}

type forecastQuery struct {
	Country string `form:"country"`
	Horizon int    `form:"horizon" binding:"min=0,max=365"`
}

// @Summary Forecast Confirmed Cases
// @Tags Forecast
// @Description Least squares trend over the recent window, extrapolated horizon days
// @ModuleID getForecast
// @Produce  json
// @Param country query string false "Country/Region, empty for the global series"
// @Param horizon query int false "Days to extrapolate"
// @Success 200 {object} domain.Forecast
// @Failure 400 {object} ValidationErrorStruct
// @Failure 404 {object} ErrorStruct
// @Router /forecast [get]
func (h *Handler) getForecast(c *gin.Context) {
	var q forecastQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		validationErrorResponse(c, err)
		return
	}
	f, err := h.services.Forecasts.Get(c.Request.Context(), q.Country, q.Horizon)
	if err != nil {
		serviceErrorResponse(c, "forecast", err)
		return
	}
	c.JSON(http.StatusOK, f)
}
