package errors

import (
	"net/http"

	"userauth/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	parent    *BaseError
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	parent := e
	if e.parent != nil {
		parent = e.parent
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    parent,
	}
}

// Is matches errors derived from the same predefined error through WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok || t == nil {
		return false
	}

	return e == t || e.parent == t
}

const invalidCredentialsMessage = "Invalid email or password"

// Predefined error types
var (
	// User-related errors

	// ErrUserNotFound is returned by login when no account owns the email.
	// It renders exactly like ErrInvalidCredentials so callers cannot enumerate registered emails.
	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		invalidCredentialsMessage,
		"",
	)

	ErrDuplicateEmail = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_EMAIL",
		"This email is already registered",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		invalidCredentialsMessage,
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Token-related errors

	// ErrInvalidToken collapses unknown, revoked and expired tokens.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"TOKEN_NOT_FOUND",
		"Token not found or already revoked",
		"",
	)

	ErrTokenGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"Token generation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Infrastructure errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"Service temporarily unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StoreUnavailableError represents a persistence failure (connectivity, deadline, driver error),
// implementing the AppError interface. It matches ErrStoreUnavailable under errors.Is.
type StoreUnavailableError struct {
	err     error
	details string
}

// NewStoreUnavailableError creates a persistence-related error
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreUnavailableError) Error() string {
	if e.err == nil {
		return "store unavailable: " + e.details
	}

	return errors.Wrap(e.err, "store unavailable: "+e.details).Error()
}

// Unwrap exposes the underlying driver error
func (e *StoreUnavailableError) Unwrap() error {
	return e.err
}

// Is reports ErrStoreUnavailable as a match
func (e *StoreUnavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return ErrStoreUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return ErrStoreUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return ErrStoreUnavailable.Message()
}

// Details never exposes driver text to clients.
func (e *StoreUnavailableError) Details() string {
	return ""
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	if err == nil {
		return nil, false
	}

	return errors.AsType[AppError](err)
}
