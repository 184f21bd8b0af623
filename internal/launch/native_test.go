// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestNativeRunnerExitCodes(t *testing.T) {
	t.Parallel()
	requireShell(t)

	tests := []struct {
		name   string
		script string
		want   ExitCode
	}{
		{name: "clean exit", script: "exit 0", want: 0},
		{name: "failure exit", script: "exit 1", want: 1},
		{name: "arbitrary exit", script: "exit 42", want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			runner := NewNativeRunner()
			code, err := runner.Run(context.Background(), Spec{Argv: []string{"sh", "-c", tt.script}})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if code != tt.want {
				t.Errorf("Run() exit code = %s, want %s", code, tt.want)
			}
		})
	}
}

func TestNativeRunnerEnvOverlay(t *testing.T) {
	t.Parallel()
	requireShell(t)

	var stdout bytes.Buffer
	runner := &NativeRunner{Stdout: &stdout}
	spec := Spec{
		Argv: []string{"sh", "-c", "printf '%s' \"$GAMERUN_TEST_VAR\""},
		Env:  map[string]string{"GAMERUN_TEST_VAR": "overlay"},
	}
	if _, err := runner.Run(context.Background(), spec); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := stdout.String(); got != "overlay" {
		t.Errorf("child saw GAMERUN_TEST_VAR=%q, want overlay", got)
	}
}

func TestNativeRunnerWorkingDirectory(t *testing.T) {
	t.Parallel()
	requireShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	runner := &NativeRunner{Stdout: &stdout}
	spec := Spec{Argv: []string{"sh", "-c", "pwd"}, Dir: dir}
	if _, err := runner.Run(context.Background(), spec); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); !strings.HasSuffix(got, dir) && got != dir {
		t.Errorf("child pwd = %q, want %q", got, dir)
	}
}

func TestNativeRunnerMissingWorkdir(t *testing.T) {
	t.Parallel()

	runner := NewNativeRunner()
	spec := Spec{Argv: []string{"sh", "-c", "exit 0"}, Dir: "/nonexistent/gamerun/workdir"}
	_, err := runner.Run(context.Background(), spec)
	if !errors.Is(err, ErrBadWorkdir) {
		t.Fatalf("Run() error = %v, want ErrBadWorkdir", err)
	}
	var workdirErr *WorkdirError
	if !errors.As(err, &workdirErr) || workdirErr.Dir != spec.Dir {
		t.Errorf("error does not carry the directory path: %v", err)
	}
}

func TestNativeRunnerMissingExecutable(t *testing.T) {
	t.Parallel()

	runner := NewNativeRunner()
	spec := Spec{Argv: []string{"gamerun-test-no-such-binary"}}
	_, err := runner.Run(context.Background(), spec)
	if !errors.Is(err, ErrExecFailed) {
		t.Fatalf("Run() error = %v, want ErrExecFailed", err)
	}
}
