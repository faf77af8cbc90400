package types

import (
	"errors"
	"fmt"
)

// Lookup and command errors shared across the Book, Record, and note
// operations. Callers match with errors.Is and render a user-facing
// message at the command boundary.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("already exists")
	ErrMalformedInput = errors.New("malformed input")
)

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// ValidationError reports a field value that failed its construction
// invariant. It carries the offending input so the message can echo it
// back to the user.
type ValidationError struct {
	Field  string // field kind: name, phone, birthday, email, address
	Input  string // the raw value that was rejected
	Reason string // human-readable rule that was violated
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
}

// newValidationError builds a ValidationError for the given field kind.
func newValidationError(field, input, reason string) *ValidationError {
	return &ValidationError{Field: field, Input: input, Reason: reason}
}
