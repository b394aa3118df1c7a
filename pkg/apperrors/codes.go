package apperrors

// ErrorCode identifies a failure kind independently of the HTTP status.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError ErrorCode = "DATABASE_ERROR"

	// Generic business-logic codes
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Authentication and authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Registration handshake
	CodeNoPendingRegistration  ErrorCode = "NO_PENDING_REGISTRATION"
	CodeIncompleteRegistration ErrorCode = "INCOMPLETE_REGISTRATION"
	CodeOTPMismatch            ErrorCode = "OTP_MISMATCH"
	CodeRegistrationExpired    ErrorCode = "REGISTRATION_EXPIRED"

	// Ledger and job workflows
	CodeInsufficientFunds   ErrorCode = "INSUFFICIENT_FUNDS"
	CodeAlreadyApplied      ErrorCode = "ALREADY_APPLIED"
	CodeJobAlreadyClaimed   ErrorCode = "JOB_ALREADY_CLAIMED"
	CodeEmailDeliveryFailed ErrorCode = "EMAIL_DELIVERY_FAILED"
)
