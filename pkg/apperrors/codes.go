package apperrors

// Error codes grouped by concern.
const (
	// Authentication and authorization
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeInvalidToken    ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	CodeInvalidTransition ErrorCode = "INVALID_STATUS_TRANSITION"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"
	CodeConflict ErrorCode = "CONFLICT"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
