// Package launcher starts benchmark child processes and waits for them.
//
// Every variant goes through the same Command description, so there is no
// shell between the harness and the benchmark binary.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Disposition controls where the child's standard output goes.
type Disposition string

const (
	// Discard drops the child's stdout.
	Discard Disposition = "discard"

	// Inherit sends the child's stdout to the harness's stdout.
	Inherit Disposition = "inherit"
)

// ParseDisposition parses "discard" or "inherit" (case-insensitive).
func ParseDisposition(s string) (Disposition, error) {
	switch Disposition(strings.ToLower(strings.TrimSpace(s))) {
	case Discard:
		return Discard, nil
	case Inherit:
		return Inherit, nil
	default:
		return "", fmt.Errorf("unknown output disposition %q (want discard or inherit)", s)
	}
}

// Command describes the child to launch on every iteration.
type Command struct {
	// Path is the executable to run
	Path string

	// Args are passed to the executable verbatim
	Args []string

	// Output decides what happens to the child's stdout
	Output Disposition

	// Dir is the working directory (empty means the harness's own)
	Dir string
}

// String renders the command line for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Path
	}
	return c.Path + " " + strings.Join(c.Args, " ")
}

// Result is what the launcher learns about a finished child.
type Result struct {
	// ExitCode is the child's exit status, or -1 if it was killed by a signal
	ExitCode int
}

// Launcher runs a command to completion.
type Launcher interface {
	// Launch starts the command and blocks until it exits. A child that
	// exits non-zero is not an error. Only failure to start the child is.
	Launch(ctx context.Context, cmd Command) (Result, error)
}

// ErrLaunch is matched by every LaunchError via errors.Is.
var ErrLaunch = errors.New("launch failed")

// LaunchError reports that the child process could not be started.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLaunch.
func (e *LaunchError) Is(target error) bool {
	return target == ErrLaunch
}

// Process launches real OS processes.
type Process struct {
	// Stdout receives the child's output for Inherit (default: os.Stdout)
	Stdout io.Writer

	// Stderr receives the child's error stream (default: os.Stderr)
	Stderr io.Writer

	// Env overrides the child's environment when non-nil
	Env []string
}

// NewProcess creates a launcher wired to the harness's own stdio.
func NewProcess() *Process {
	return &Process{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Launch implements Launcher.
//
// The child is created with exec.Command rather than CommandContext, so
// cancelling ctx never kills it. Launch does return ctx.Err() as soon as ctx
// is cancelled, leaving the running child to whatever the terminal does
// with its process group; it is still reaped in the background.
func (p *Process) Launch(ctx context.Context, c Command) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if c.Path == "" {
		return Result{}, &LaunchError{Path: c.Path, Err: errors.New("empty command path")}
	}

	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin
	cmd.Stderr = p.Stderr
	if p.Env != nil {
		cmd.Env = p.Env
	}

	switch c.Output {
	case Inherit:
		cmd.Stdout = p.Stdout
	default:
		// nil Stdout connects the child to the null device
		cmd.Stdout = nil
	}

	if err := cmd.Start(); err != nil {
		return Result{}, &LaunchError{Path: c.Path, Err: err}
	}

	done := make(chan Result, 1)
	go func() {
		done <- waitResult(cmd)
	}()

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// waitResult waits for cmd and extracts its exit status.
func waitResult(cmd *exec.Cmd) Result {
	err := cmd.Wait()
	if err == nil {
		return Result{ExitCode: 0}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{ExitCode: exitErr.ExitCode()}
	}
	// I/O copy failure: the child still ran to completion
	if cmd.ProcessState != nil {
		return Result{ExitCode: cmd.ProcessState.ExitCode()}
	}
	return Result{ExitCode: -1}
}
