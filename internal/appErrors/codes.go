package appErrors

// Error codes grouped by domain area.
const (
	// Authentication and authorization
	CodeInvalidCredentials      ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized            ErrorCode = "UNAUTHORIZED"
	CodeForbidden               ErrorCode = "FORBIDDEN"
	CodeInvalidToken            ErrorCode = "INVALID_TOKEN"
	CodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"
	CodeRateLimited             ErrorCode = "RATE_LIMITED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Labor requests
	CodeRequestNotFound       ErrorCode = "REQUEST_NOT_FOUND"
	CodeRequestCreationFailed ErrorCode = "REQUEST_CREATION_FAILED"

	// Confirmation tokens
	CodeSummaryTokenInvalid ErrorCode = "SUMMARY_TOKEN_INVALID"
	CodeSummaryTokenExpired ErrorCode = "SUMMARY_TOKEN_EXPIRED"

	// Notifications
	CodeNotificationNotFound      ErrorCode = "NOTIFICATION_NOT_FOUND"
	CodeInvalidNotificationStatus ErrorCode = "INVALID_NOTIFICATION_STATUS"

	// Agencies
	CodeAgencyNotFound ErrorCode = "AGENCY_NOT_FOUND"

	// Infrastructure
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
