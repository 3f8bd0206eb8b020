package api

import (
	"fmt"
	"net/http"
)

const genericErrorDetail = "An error occurred"

// Error is the single failure type raised by the client. Status 0 means the
// transport itself failed (offline, DNS, cancelled context); any other
// status carries the server's response, with Detail taken from the backend's
// {detail} body when it parses and a generic fallback when it does not.
type Error struct {
	Status int
	Detail string
	Body   map[string]any

	cause error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Detail, e.Status)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Unauthorized reports whether this failure invalidates the credential.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsNetwork reports whether the failure never reached the server.
func (e *Error) IsNetwork() bool {
	return e.Status == 0
}

func newTransportError(err error) *Error {
	return &Error{
		Status: 0,
		Detail: err.Error(),
		cause:  err,
	}
}
