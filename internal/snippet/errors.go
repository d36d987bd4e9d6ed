package snippet

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a snippet does not exist or has expired.
	ErrNotFound = errors.New("snippet not found")

	// ErrIDTaken is returned by Repository.Create when the id already holds
	// a live record. The caller is expected to redraw.
	ErrIDTaken = errors.New("snippet id already taken")

	// ErrPermissionDenied is returned when deletion is not authorized,
	// either because the record has no delete token or the provided token
	// does not match.
	ErrPermissionDenied = errors.New("delete not authorized")

	// ErrIDSpaceExhausted is returned when allocation gives up after the
	// configured number of collision retries.
	ErrIDSpaceExhausted = errors.New("id allocation attempts exhausted")
)

// ValidationError describes a rejected input field. Validation happens
// before any store access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
