package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies the class of an application error.
type ErrorCode string

// AppError is the application error carried up to the HTTP layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so a sentinel still matches after
// WithDetails or WithError cloned it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && e.Code == t.Code
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// MarshalJSON hides the wrapped error and HTTP code from API responses.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication
	ErrInvalidCredentials      = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized            = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken            = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
	ErrInsufficientPermissions = New(CodeInsufficientPermissions, "Insufficient permissions", http.StatusForbidden)
	ErrRateLimited             = New(CodeRateLimited, "Too many failed attempts, try again later", http.StatusTooManyRequests)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Labor requests
	ErrRequestNotFound = New(CodeRequestNotFound, "Labor request not found", http.StatusNotFound)
	// Compensating delete already ran when this is returned; the caller sees
	// a generic persistence failure, never the storage error text.
	ErrRequestCreationFailed = New(CodeRequestCreationFailed, "Failed to create labor request", http.StatusInternalServerError)

	// Confirmation tokens. Expired is deliberately distinct from not-found:
	// the request row still exists, its token window has closed.
	ErrSummaryTokenInvalid = New(CodeSummaryTokenInvalid, "Confirmation token is malformed", http.StatusBadRequest)
	ErrSummaryTokenExpired = New(CodeSummaryTokenExpired, "Confirmation token has expired", http.StatusGone)

	// Notifications
	ErrNotificationNotFound      = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)
	ErrInvalidNotificationStatus = New(CodeInvalidNotificationStatus, "Notification status transition not allowed", http.StatusConflict)

	// Agencies
	ErrAgencyNotFound = New(CodeAgencyNotFound, "Agency not found", http.StatusNotFound)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeRequestNotFound, message, http.StatusNotFound)
}

func NewInternalError(message string) *AppError {
	return New(CodeInternalError, message, http.StatusInternalServerError)
}
