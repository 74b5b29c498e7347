package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail messages
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError builds a VALIDATION_001 response from field -> message
// pairs. Details are sorted by field so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001 and hands it back for logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,
	AuditInvalidDateRange:   http.StatusBadRequest,

	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,

	AuthInsufficientPermission: http.StatusForbidden,
	AuthTokenIssuingDisabled:   http.StatusForbidden,

	ExportNoData:            http.StatusNotFound,
	SystemRouteNotFound:     http.StatusNotFound,
	SystemRequestCancelled:  http.StatusRequestTimeout,
	SystemRateLimitExceeded: http.StatusTooManyRequests,
	ExportDataUnavailable:   http.StatusBadGateway,

	SystemServiceUnavailable: http.StatusServiceUnavailable,
	BackendUnavailable:       http.StatusServiceUnavailable,
	BackendTimeout:           http.StatusGatewayTimeout,
}

// GetHTTPStatus maps an error code to its HTTP status. Anything not listed,
// including unknown codes, is a 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// RetryAfterSeconds is the Retry-After hint sent with code, or 0 when a
// retry will not help.
func RetryAfterSeconds(code ErrorCode) int {
	switch code {
	case SystemRateLimitExceeded:
		return 1
	case BackendTimeout:
		return 5
	case BackendUnavailable, ExportDataUnavailable, SystemServiceUnavailable:
		return 30
	default:
		return 0
	}
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
