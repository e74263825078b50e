package store

import (
	"errors"
	"fmt"
)

// FieldError reports a backend validation failure attributable to one
// field of the submitted record.
type FieldError struct {
	Field  string
	Detail string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Detail
}

// ConflictError reports a uniqueness conflict on a field value.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "record already exists"
	}
	return fmt.Sprintf("duplicate %s %q", e.Field, e.Value)
}

// Reason extracts the most specific human-readable reason from a store
// error, preferring field-level detail over the generic message, so
// operators can fix and re-import just the failed rows.
func Reason(err error) string {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Error()
	}
	return err.Error()
}
