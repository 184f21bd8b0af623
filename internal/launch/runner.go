// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"

	"gamerun/pkg/gamefile"
)

type (
	// Spec describes one process launch: the argument vector, an
	// environment overlay merged on top of the inherited environment, and
	// an optional working directory.
	Spec struct {
		Argv []string
		Env  map[string]string
		Dir  string
	}

	// Runner executes a Spec and reports the child's exit code. A non-nil
	// error means the process could not be run; a non-zero exit code with a
	// nil error is normal process termination.
	Runner interface {
		Run(ctx context.Context, spec Spec) (ExitCode, error)
	}
)

// Game launches a resolved game through the given runner and maps the
// outcome to the launch error taxonomy. Any non-zero exit code from the
// child is reported as a CommandFailedError.
func Game(ctx context.Context, runner Runner, game *gamefile.Game) error {
	if !game.Installed {
		return ErrNotInstalled
	}

	spec := Spec{Argv: game.Command, Env: game.Env, Dir: game.Dir}
	code, err := runner.Run(ctx, spec)
	if err != nil {
		return err
	}
	if !code.IsSuccess() {
		return &CommandFailedError{Argv: game.Command, Code: code}
	}
	return nil
}
