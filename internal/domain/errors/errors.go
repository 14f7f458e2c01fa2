// Package errors is the catalogue of failures a client can observe. Each entry
// fixes the HTTP status, a stable machine code and the public message.
package errors

import (
	"net/http"

	"todolist/internal/errors"
)

// AppError is an error that knows how it is rendered to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	// Details is optional context, empty when there is none.
	Details() string
}

// BaseError is a catalogue entry. Entries are compared by identity, so derive
// variants through WrapMessage or WithDetails rather than copying.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WrapMessage annotates e for logs. The public message is unchanged.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithDetails returns a variant of e whose Details are shown to the client.
// The variant still satisfies errors.Is(err, e).
func (e *BaseError) WithDetails(details string) error {
	variant := *e
	variant.details = details

	return &detailedError{BaseError: &variant, origin: e}
}

type detailedError struct {
	*BaseError
	origin *BaseError
}

func (e *detailedError) Is(target error) bool {
	return target == e.origin
}

// Accounts.
var (
	ErrUserNotFound = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserConflict = define(http.StatusConflict, "USER_CONFLICT", "Username or email already registered")
)

// Authentication and authorization.
var (
	ErrForbidden = define(http.StatusForbidden, "FORBIDDEN", "Not enough permission")

	// ErrCredentialsInvalid covers a missing, malformed or expired bearer token
	// and a token whose subject no longer exists.
	ErrCredentialsInvalid = define(http.StatusUnauthorized, "CREDENTIALS_INVALID", "Could not validate credentials")

	// ErrIncorrectCredentials covers an unknown email and a wrong password alike.
	ErrIncorrectCredentials = define(http.StatusUnauthorized, "INCORRECT_CREDENTIALS", "Incorrect username or password")

	ErrPasswordHashFailed = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")
	ErrTokenIssueFailed   = define(http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "Could not issue access token")
)

// Todos.
var (
	ErrTodoNotFound = define(http.StatusNotFound, "TODO_NOT_FOUND", "Task not found")
)

// Input and infrastructure.
var (
	ErrValidationFailed  = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrTransactionFailed = define(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
	ErrInternalError     = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

// DatabaseExecuteError keeps the driver error for logs while rendering as a
// generic 500.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
