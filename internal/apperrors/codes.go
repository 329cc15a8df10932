package apperrors

// Error codes grouped by domain. Codes are part of the API contract and must
// stay stable.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Resources
	CodeUserNotFound   ErrorCode = "USER_NOT_FOUND"
	CodeSchemeNotFound ErrorCode = "SCHEME_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeInvalidStatus      ErrorCode = "INVALID_STATUS"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
