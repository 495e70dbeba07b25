package record

import "fmt"

// ValidationError reports a missing or invalid field on a draft or patch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports that no record carries the requested ID.
type NotFoundError struct {
	Kind string // e.g. "expense", "task"
	ID   int
}

func (e *NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "record"
	}
	return fmt.Sprintf("%s with ID %d not found", kind, e.ID)
}

// PersistenceError wraps a failure reading or writing the backing file.
type PersistenceError struct {
	Op   string // read, write, create
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
