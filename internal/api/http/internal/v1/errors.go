package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	CountryNotFoundCode        = 1001
	CountryNotFoundMessage     = "country not found"
	EmptySelectionCode         = 1002
	EmptySelectionMessage      = "no observations match the selection"
	InvalidChartKindCode       = 1003
	InvalidChartKindMessage    = "invalid chart kind"
	InvalidFormatCode          = 1004
	InvalidFormatMessage       = "invalid chart format, use png or svg"
	MalformedDateCode          = 1005
	MalformedDateMessage       = "malformed date, use YYYY-MM-DD"
	SameCountryCode            = 1006
	SameCountryMessage         = "choose two different countries"
	ExportNotFoundCode         = 1007
	ExportNotFoundMessage      = "export not found"
	ExportQueueDisabledCode    = 1008
	ExportQueueDisabledMessage = "asynchronous exports are disabled"

	ValidationErrorCode    = 6000
	ValidationErrorMessage = "validation error"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	switch code {
	case CountryNotFoundCode:
		errorStruct.ErrorCode = CountryNotFoundCode
		errorStruct.ErrorMessage = CountryNotFoundMessage
	case EmptySelectionCode:
		errorStruct.ErrorCode = EmptySelectionCode
		errorStruct.ErrorMessage = EmptySelectionMessage
	case InvalidChartKindCode:
		errorStruct.ErrorCode = InvalidChartKindCode
		errorStruct.ErrorMessage = InvalidChartKindMessage
	case InvalidFormatCode:
		errorStruct.ErrorCode = InvalidFormatCode
		errorStruct.ErrorMessage = InvalidFormatMessage
	case MalformedDateCode:
		errorStruct.ErrorCode = MalformedDateCode
		errorStruct.ErrorMessage = MalformedDateMessage
	case SameCountryCode:
		errorStruct.ErrorCode = SameCountryCode
		errorStruct.ErrorMessage = SameCountryMessage
	case ExportNotFoundCode:
		errorStruct.ErrorCode = ExportNotFoundCode
		errorStruct.ErrorMessage = ExportNotFoundMessage
	case ExportQueueDisabledCode:
		errorStruct.ErrorCode = ExportQueueDisabledCode
		errorStruct.ErrorMessage = ExportQueueDisabledMessage
	}

	return errorStruct
}
