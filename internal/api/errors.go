package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the backend rejected the bearer token.
	// The stored token has already been discarded when this is returned.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden indicates the authenticated user lacks the role or
	// ownership the operation requires.
	ErrForbidden = errors.New("access denied")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates the backend could not be reached.
	ErrUnavailable = errors.New("server unavailable")
)

// StatusError carries the HTTP status and the server-provided error
// message from a failed call.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Unwrap maps well-known statuses onto the package sentinels so call
// sites can branch with errors.Is.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}

// Message returns the server-provided error string when one exists,
// falling back to the given default otherwise. Every user-facing error
// path funnels through here so the fallback wording lives in one place
// per operation instead of being rederived at each call site.
func Message(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return "Unable to reach the server"
	}
	return fallback
}
