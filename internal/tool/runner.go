// Package tool runs the external archive and signing binaries.
package tool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runner executes an external command synchronously and reports its exit
// status. A non-zero status is not an error at this level; callers decide
// what each status means.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecRunner runs commands with os/exec, blocking until they exit.
type ExecRunner struct {
	// Stdout and Stderr receive the command's output. Nil writers default
	// to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts the command and waits for it. The returned error is non-nil
// only when the command could not be run at all (e.g. binary missing);
// otherwise the command's exit status is returned.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	} else {
		cmd.Stdout = os.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	} else {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("run %s: %w", name, err)
}
