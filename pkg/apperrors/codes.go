package apperrors

// ErrorCode identifies a class of failure independent of the HTTP layer.
type ErrorCode string

const (
	// System level.
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStoreError    ErrorCode = "STORE_ERROR"
	CodeGatewayError  ErrorCode = "GATEWAY_ERROR"
	CodeTimeout       ErrorCode = "TIMEOUT"

	// Business logic.
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization.
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
)
