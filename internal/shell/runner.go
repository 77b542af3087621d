// Package shell runs captured commands through the user's POSIX shell.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
)

// Result describes a finished command.
type Result struct {
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Runner executes a command line.
type Runner interface {
	// Run blocks until the command exits. A non-zero exit status is reported
	// in Result; err is only set when the command could not be run at all.
	Run(ctx context.Context, command string) (Result, error)
}

// ShellRunner runs commands as `<Shell> -c <command>` with the given streams.
type ShellRunner struct {
	Shell  string // defaults to "sh"
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ShellRunner) Run(ctx context.Context, command string) (Result, error) {
	sh := r.Shell
	if sh == "" {
		sh = "sh"
	}
	cmd := exec.CommandContext(ctx, sh, "-c", command)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return Result{}, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitCode(exitErr)}, nil
	}
	return Result{ExitCode: -1}, fmt.Errorf("failed to execute command: %w", err)
}

// exitCode follows the shell convention of 128+signal for a child killed by
// a signal.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return -1
}
