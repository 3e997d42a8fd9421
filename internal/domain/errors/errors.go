// Package errors defines the application error taxonomy. Every error that
// crosses the usecase boundary implements AppError so the delivery layer can
// map it to an HTTP outcome without inspecting internals.
package errors

import (
	"net/http"

	"persons/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Person-related errors
	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"person not found",
		"",
	)

	ErrPersonCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSON_CREATION_FAILED",
		"failed to create person",
		"",
	)

	ErrPersonUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSON_UPDATE_FAILED",
		"failed to update person",
		"",
	)

	// CEP-related errors
	ErrCEPInvalid = NewBaseError(
		http.StatusBadRequest,
		"CEP_INVALID",
		"cep must contain exactly 8 digits",
		"",
	)

	ErrCEPNotFound = NewBaseError(
		http.StatusNotFound,
		"CEP_NOT_FOUND",
		"no address found for the given cep",
		"",
	)

	// ErrCEPUnresolvable is the create/update variant of ErrCEPNotFound:
	// the payload referenced a well-formed cep that the provider does not
	// know, so the whole mutation is rejected as a bad request.
	ErrCEPUnresolvable = NewBaseError(
		http.StatusBadRequest,
		"CEP_UNRESOLVABLE",
		"the given cep does not resolve to an address",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Pagination-related errors
	ErrPaginationOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"PAGINATION_OUT_OF_RANGE",
		"limit must be within [1,100] and offset must not be negative",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
