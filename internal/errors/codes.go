package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
	AuthTokenIssuingDisabled   ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Back-office service error codes (BACKEND_*)
const (
	BackendUnavailable ErrorCode = "BACKEND_001"
	BackendTimeout     ErrorCode = "BACKEND_002"
)

// Export error codes (EXPORT_*)
const (
	ExportNoData          ErrorCode = "EXPORT_001"
	ExportDataUnavailable ErrorCode = "EXPORT_002"
	ExportFailed          ErrorCode = "EXPORT_003"
)

// Audit log error codes (AUDIT_*)
const (
	AuditInvalidDateRange ErrorCode = "AUDIT_001"
	AuditQueryFailed      ErrorCode = "AUDIT_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRequestCancelled   ErrorCode = "SYSTEM_007"
	SystemRouteNotFound      ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthTokenIssuingDisabled:   "Token issuing is not enabled on this server",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Back-office errors
	BackendUnavailable: "Back-office service is unavailable",
	BackendTimeout:     "Back-office service did not respond in time",

	// Export errors
	ExportNoData:          "There is no data to export for the selected filters",
	ExportDataUnavailable: "Export data could not be loaded from the back-office service",
	ExportFailed:          "Failed to generate the export file",

	// Audit errors
	AuditInvalidDateRange: "Start date must be before end date",
	AuditQueryFailed:      "Failed to load audit logs",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRequestCancelled:   "Request was cancelled",
	SystemRouteNotFound:      "The requested endpoint does not exist",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
