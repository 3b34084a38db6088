// Package apperrors defines the typed failures shared by services, middleware and handlers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a failure with a stable code and the HTTP status it maps to
type Error struct {
	Code       string
	Message    string
	StatusCode int
	Details    []string
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code, so copies made by WithMessage
// still satisfy errors.Is(err, ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithMessage returns a copy of the error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// WithDetails returns a copy of the error carrying field-level messages.
func (e *Error) WithDetails(details []string) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap returns a copy of the error that records cause for logging.
func (e *Error) Wrap(cause error) *Error {
	cp := *e
	cp.cause = cause
	return &cp
}

var (
	// ErrValidation is returned when a payload fails schema checks.
	ErrValidation = &Error{
		Code:       "validation_failed",
		Message:    "Validation failed",
		StatusCode: http.StatusBadRequest,
	}

	// ErrUnauthenticated is returned when a bearer token is missing or invalid.
	ErrUnauthenticated = &Error{
		Code:       "unauthenticated",
		Message:    "Not authorized to access this route",
		StatusCode: http.StatusUnauthorized,
	}

	// ErrInvalidCredentials is returned for any failed login, whatever the reason.
	ErrInvalidCredentials = &Error{
		Code:       "invalid_credentials",
		Message:    "Invalid credentials",
		StatusCode: http.StatusUnauthorized,
	}

	// ErrForbidden is returned when the caller's role is not allowed.
	ErrForbidden = &Error{
		Code:       "forbidden",
		Message:    "You do not have permission to perform this action",
		StatusCode: http.StatusForbidden,
	}

	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = &Error{
		Code:       "not_found",
		Message:    "Resource not found",
		StatusCode: http.StatusNotFound,
	}

	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = &Error{
		Code:       "duplicate_key",
		Message:    "Duplicate field value entered",
		StatusCode: http.StatusBadRequest,
	}

	// ErrPayloadTooLarge is returned when a request body exceeds the limit.
	ErrPayloadTooLarge = &Error{
		Code:       "payload_too_large",
		Message:    "Request body is too large",
		StatusCode: http.StatusRequestEntityTooLarge,
	}

	// ErrTooManyRequests is returned by the rate limiters.
	ErrTooManyRequests = &Error{
		Code:       "too_many_requests",
		Message:    "Too many requests from this IP, please try again later.",
		StatusCode: http.StatusTooManyRequests,
	}

	// ErrInternal is returned for unexpected server errors.
	ErrInternal = &Error{
		Code:       "internal_error",
		Message:    "Something went wrong",
		StatusCode: http.StatusInternalServerError,
	}
)

// Validation builds a validation failure listing every field error.
func Validation(details ...string) *Error {
	return ErrValidation.WithDetails(details)
}

// DuplicateKey builds a duplicate-key failure naming the conflicting field.
func DuplicateKey(field string) *Error {
	if field == "" {
		return ErrDuplicateKey
	}
	return ErrDuplicateKey.WithMessage(fmt.Sprintf("%s already exists", capitalize(field)))
}

// From converts any error to an *Error. Unknown errors become ErrInternal
// wrapping the original so it can still be logged.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal.Wrap(err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
