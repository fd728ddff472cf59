package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is a generic sentinel for state conflicts.
	ErrConflict = errors.New("conflict")
)

// APIError is a failure that already knows which HTTP status it maps to.
// Handlers and services produce these for domain and auth failures; anything
// without a status falls through to the error middleware as a 500.
type APIError struct {
	Status  int
	Message string
	err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) HTTPStatusCode() int { return e.Status }

func (e *APIError) Unwrap() error { return e.err }

func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: msg, err: ErrNotFound}
}

func Unauthorized(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: msg, err: ErrUnauthorized}
}

func Conflict(msg string) *APIError {
	return &APIError{Status: http.StatusConflict, Message: msg, err: ErrConflict}
}

func Unavailable(msg string) *APIError {
	return &APIError{Status: http.StatusServiceUnavailable, Message: msg}
}

// StatusCode resolves err to an HTTP status, defaulting to 500 for anything
// that does not carry one.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
