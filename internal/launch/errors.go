// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInstalled is returned when launching a game whose catalog entry
	// is marked not installed.
	ErrNotInstalled = errors.New("game is not installed")

	// ErrCommandFailed is the sentinel error wrapped by CommandFailedError.
	ErrCommandFailed = errors.New("command failed")

	// ErrExecFailed is the sentinel error wrapped by ExecFailedError.
	ErrExecFailed = errors.New("could not execute command")

	// ErrBadWorkdir is the sentinel error wrapped by WorkdirError.
	ErrBadWorkdir = errors.New("could not change directory")
)

type (
	// CommandFailedError is returned when the launched process exits with a
	// non-zero code.
	CommandFailedError struct {
		Argv []string
		Code ExitCode
	}

	// ExecFailedError is returned when the process could not be started at
	// all (executable missing or not runnable).
	ExecFailedError struct {
		Argv  []string
		Cause error
	}

	// WorkdirError is returned when the configured working directory does
	// not exist or is not usable.
	WorkdirError struct {
		Dir   string
		Cause error
	}
)

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("command failed with exit code %s: %s", e.Code, strings.Join(e.Argv, " "))
}

// Unwrap returns ErrCommandFailed so callers can use errors.Is for programmatic detection.
func (e *CommandFailedError) Unwrap() error { return ErrCommandFailed }

// Error implements the error interface.
func (e *ExecFailedError) Error() string {
	return fmt.Sprintf("could not execute %s: %v", strings.Join(e.Argv, " "), e.Cause)
}

// Unwrap returns ErrExecFailed so callers can use errors.Is for programmatic detection.
func (e *ExecFailedError) Unwrap() error { return ErrExecFailed }

// Error implements the error interface.
func (e *WorkdirError) Error() string {
	return fmt.Sprintf("could not change directory to %s: %v", e.Dir, e.Cause)
}

// Unwrap returns ErrBadWorkdir so callers can use errors.Is for programmatic detection.
func (e *WorkdirError) Unwrap() error { return ErrBadWorkdir }
