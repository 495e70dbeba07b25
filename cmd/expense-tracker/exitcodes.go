package main

import (
	"errors"

	"github.com/matsen/trackers/internal/record"
)

// Exit codes shared by the tracker CLIs
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, file I/O failure)
	ExitConfigError = 2 // Configuration error (unreadable .env or config.yml)
	ExitDataError   = 3 // Validation failure (missing description, bad amount or month)
	ExitNotFound    = 4 // No expense with the given ID
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
		nerr *record.NotFoundError
		cerr *configError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &verr):
		return ExitDataError
	case errors.As(err, &nerr):
		return ExitNotFound
	case errors.As(err, &cerr):
		return ExitConfigError
	default:
		return ExitError
	}
}
