package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by read operations when no row matches.
// Callers distinguish it from genuine storage failures with errors.Is.
var ErrNotFound = errors.New("record not found")

// ConflictError reports a uniqueness-constraint violation. Field names
// the conflicting attribute so handlers can produce a readable message.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists", e.Field, e.Value)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
