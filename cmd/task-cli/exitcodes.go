package main

import (
	"errors"

	"github.com/matsen/trackers/internal/record"
	"github.com/matsen/trackers/internal/task"
)

// Exit codes shared by the tracker CLIs
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, file I/O failure)
	ExitConfigError = 2 // Configuration error (unreadable .env or config.yml)
	ExitDataError   = 3 // Validation failure (missing description, bad ID or status filter)
	ExitNotFound    = 4 // No task with the given ID
)

// configError marks failures while resolving configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// exitCodeFor maps an error returned by a command to a process exit code.
func exitCodeFor(err error) int {
	var (
		verr *record.ValidationError
		ferr *task.InvalidFilterError
		nerr *record.NotFoundError
		cerr *configError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &verr), errors.As(err, &ferr):
		return ExitDataError
	case errors.As(err, &nerr):
		return ExitNotFound
	case errors.As(err, &cerr):
		return ExitConfigError
	default:
		return ExitError
	}
}
