// Package apperr defines the error taxonomy shared across the service.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a local lookup miss. The content resolver treats it
	// as a fall-through to the next source, not a terminal failure.
	ErrNotFound = errors.New("not found")

	// ErrMissingInput signals a missing required request field.
	ErrMissingInput = errors.New("missing required input")

	// ErrNoCredential signals that a remote fallback was needed but the caller
	// supplied no bearer credential. No remote call is attempted.
	ErrNoCredential = errors.New("missing credential")

	// ErrUnavailable signals a network-level failure reaching the remote backend.
	ErrUnavailable = errors.New("backend unavailable")
)

// UpstreamError carries a non-success status returned by the remote backend.
// The status is passed through to the caller unchanged.
type UpstreamError struct {
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}
