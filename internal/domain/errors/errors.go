package errors

import (
	"net/http"

	"farmlease/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	root := e
	if e.parent != nil {
		root = e.parent
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		parent:    root,
	}
}

// Is lets copies produced by WithDetails match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e == t || (e.parent != nil && e.parent == t)
}

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// Caller errors. Every farm operation checks them in this order:
// unauthenticated, invalid input, missing record, forbidden.
var (
	ErrUnauthenticated  = define(http.StatusUnauthorized, "UNAUTHENTICATED", "Unauthorized")
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input")
	ErrForbidden        = define(http.StatusForbidden, "FORBIDDEN", "Forbidden")
)

// Identity errors.
var (
	ErrUserNotFound        = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists   = define(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered")
	ErrUserCreationFailed  = define(http.StatusInternalServerError, "USER_CREATION_FAILED", "Failed to create user")
	ErrInvalidCredentials  = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrRefreshTokenInvalid = define(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
)

// Farm record errors.
var (
	ErrPlotNotFound       = define(http.StatusNotFound, "PLOT_NOT_FOUND", "Plot not found")
	ErrCropNotFound       = define(http.StatusNotFound, "CROP_NOT_FOUND", "Crop not found")
	ErrLeaseAlreadyExists = define(http.StatusConflict, "LEASE_ALREADY_EXISTS", "Farmer already leases this plot")
	ErrInvalidReference   = define(http.StatusBadRequest, "INVALID_REFERENCE", "Referenced record does not exist")
)

// DatabaseExecuteError is a failed statement. The driver error stays
// reachable through Unwrap but never reaches the response body.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError wraps err with what the repository was doing.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database operation failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
