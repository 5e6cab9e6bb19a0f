package cli

import (
	"errors"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// sysError marks err as an environment failure (I/O, parsing, config).
func sysError(err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps err to a process exit code. Errors not marked otherwise are
// user errors: unknown items, ambiguous targets, duplicates, bad arguments.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	if errors.Is(err, types.ErrParsing) {
		return exitSysError
	}
	return exitUserError
}

// errorMessage renders err for the user, adding a hint where one helps.
func errorMessage(err error) string {
	msg := err.Error()
	switch {
	case errors.Is(err, types.ErrAmbiguousItem):
		msg += " (use --id, see 'abbr get')"
	case errors.Is(err, types.ErrParsing):
		msg += " (fix or remove the file)"
	}
	return msg
}
