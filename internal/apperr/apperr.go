// Package apperr defines the error taxonomy shared between the service layer
// and the HTTP boundary. Services return an *Error with a safe message and an
// HTTP-style status; the boundary performs a single match over the type to
// render a response, so no raw storage or library error ever leaks out.
package apperr

import (
	"errors"
	"fmt"
)

// Error is an expected failure whose message is safe to surface.
type Error struct {
	Status  int
	Message string

	// Err is the underlying cause, for logs only. Never rendered.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Invalid flags malformed input that slipped past the validation boundary.
func Invalid(message string) *Error {
	return &Error{Status: 400, Message: message}
}

// Unauthorized flags a failed credential or token check.
func Unauthorized(message string) *Error {
	return &Error{Status: 401, Message: message}
}

// Conflict flags a uniqueness violation, e.g. an already registered email.
func Conflict(message string) *Error {
	return &Error{Status: 409, Message: message}
}

// Service flags an expected business-rule failure.
func Service(message string) *Error {
	return &Error{Status: 400, Message: message}
}

// Internal wraps an unexpected downstream failure behind a generic message.
func Internal(message string, err error) *Error {
	return &Error{Status: 500, Message: message, Err: err}
}

// From extracts an *Error from err, if there is one in its chain.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
