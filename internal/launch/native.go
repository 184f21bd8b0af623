// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// NativeRunner executes launch specs as real child processes via os/exec.
type NativeRunner struct {
	// Stdin, Stdout, Stderr override the child's standard streams.
	// Nil streams default to the launcher's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewNativeRunner creates a runner wired to the launcher's own stdio.
func NewNativeRunner() *NativeRunner {
	return &NativeRunner{}
}

// Run starts the process described by spec and waits for it to exit. The
// spec's env overlay is merged on top of the inherited environment, never
// replacing it wholesale.
func (r *NativeRunner) Run(ctx context.Context, spec Spec) (ExitCode, error) {
	if spec.Dir != "" {
		if _, err := os.Stat(spec.Dir); err != nil {
			return 1, &WorkdirError{Dir: spec.Dir, Cause: err}
		}
	}

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)
	cmd.Dir = spec.Dir

	env := os.Environ()
	for name, value := range spec.Env {
		env = append(env, name+"="+value)
	}
	cmd.Env = env

	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 1, &ExecFailedError{Argv: spec.Argv, Cause: err}
	}
	return 0, nil
}

func (r *NativeRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *NativeRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *NativeRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
