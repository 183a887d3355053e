package api

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired marks calls that need a credential when none is
	// available. No network request is made in that case.
	ErrAuthRequired = errors.New("authentication required")

	// ErrUnreachable marks transport-level failures (DNS, refused
	// connection, timeout). The reported status is 0.
	ErrUnreachable = errors.New("server unreachable")
)

// FieldError is a single validation failure attached to a rejected request.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is the one error type the API layer produces. Message is always
// human-readable and safe to surface to the user verbatim; Status is the
// HTTP status of the rejection, 0 for transport failures, and 401 for the
// pre-flight missing-credential case.
//
// Use errors.Is with ErrAuthRequired / ErrUnreachable to distinguish the
// non-HTTP kinds.
type Error struct {
	Message string
	Status  int
	Fields  []FieldError

	cause error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func newAuthRequiredError() *Error {
	return &Error{
		Message: "You are not signed in",
		Status:  401,
		cause:   ErrAuthRequired,
	}
}

func newUnreachableError(baseURL string) *Error {
	return &Error{
		Message: fmt.Sprintf("Cannot reach server at %s. Ensure the backend is running.", baseURL),
		Status:  0,
		cause:   ErrUnreachable,
	}
}
