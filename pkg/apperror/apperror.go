// Package apperror carries an HTTP-aware error through handler code so the
// error middleware can render it without type switches on domain errors.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an application error with the status and code it renders as.
type Error struct {
	Status  int
	Code    string
	Message string
	Detail  interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error wrapping cause, which may be nil.
func New(status int, code, message string, cause error) *Error {
	return &Error{Status: status, Code: code, Message: message, Err: cause}
}

func BadRequest(message string, cause error) *Error {
	return New(http.StatusBadRequest, "BAD_REQUEST", message, cause)
}

func NotFound(message string, cause error) *Error {
	return New(http.StatusNotFound, "NOT_FOUND", message, cause)
}

func Unavailable(message string, cause error) *Error {
	return New(http.StatusServiceUnavailable, "UNAVAILABLE", message, cause)
}

func Internal(message string, cause error) *Error {
	return New(http.StatusInternalServerError, "INTERNAL_ERROR", message, cause)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
