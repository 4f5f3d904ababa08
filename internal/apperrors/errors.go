package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidConfig indicates that a report configuration cannot be evaluated,
// e.g. a non-positive budget ceiling or an unknown period.
var ErrInvalidConfig = errors.New("invalid report configuration")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrNoOwnerSession indicates that a store call was made without an owner.
var ErrNoOwnerSession = errors.New("no owner session")

// ErrStoreUnavailable indicates that the transaction store could not be reached or failed.
var ErrStoreUnavailable = errors.New("transaction store unavailable")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps a persistence failure so callers can match it with ErrStoreUnavailable.
func NewStoreError(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, fmt.Errorf("%w: %w", ErrStoreUnavailable, err))
}
