package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes external programs.
type Runner interface {
	// Exec runs name with args and returns stdout. A non-zero exit status is
	// always an error, whatever was written to stdout.
	Exec(ctx context.Context, name string, args ...string) (string, error)

	// LookPath resolves name against the search path.
	LookPath(name string) (string, error)
}

// ExitError reports a program that ran and exited with a non-zero status.
type ExitError struct {
	Program  string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s %s exited with status %d",
		e.Program, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsExitError reports whether err came from a program exiting non-zero, as
// opposed to the program failing to start at all.
func IsExitError(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}

// osRunner executes real programs via exec.CommandContext.
type osRunner struct{}

// New returns a Runner backed by the operating system.
func New() Runner {
	return osRunner{}
}

func (osRunner) Exec(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &ExitError{
				Program:  name,
				Args:     append([]string(nil), args...),
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
				Err:      err,
			}
		}
		return stdout.String(), fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return stdout.String(), nil
}

func (osRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Call runs name with args and discards stdout. On failure the error is
// prefixed with label so callers can report which step failed.
func Call(ctx context.Context, r Runner, label, name string, args ...string) error {
	if _, err := r.Exec(ctx, name, args...); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}
