// Package timew integrates with Timewarrior so reminders only fire while
// the user is tracking work.
//
// Every failure resolves to "send the reminder": a broken or missing timew
// must never silently stop reminders.
package timew

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/RevCBH/szmer/internal/runner"
)

// DefaultCommand is the Timewarrior binary name looked up on PATH.
const DefaultCommand = "timew"

// ErrNotInstalled indicates timew is not on the search path.
var ErrNotInstalled = errors.New("timewarrior is not installed")

// Status is a display-only snapshot of the integration.
type Status struct {
	IsInstalled bool

	// BinaryPath is empty when timew was not found.
	BinaryPath string

	// IsTracking is nil when the state could not be determined.
	IsTracking *bool
}

// Tracker queries a Timewarrior installation.
type Tracker struct {
	runner  runner.Runner
	command string
	log     *log.Logger
}

// New creates a Tracker. An empty command selects DefaultCommand; a nil
// logger selects log.Default().
func New(r runner.Runner, command string, logger *log.Logger) *Tracker {
	if command == "" {
		command = DefaultCommand
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{runner: r, command: command, log: logger}
}

// BinaryPath resolves timew on the search path.
func (t *Tracker) BinaryPath() (string, bool) {
	path, err := t.runner.LookPath(t.command)
	if err != nil {
		return "", false
	}
	return path, true
}

// IsInstalled reports whether timew is on the search path.
func (t *Tracker) IsInstalled() bool {
	_, ok := t.BinaryPath()
	return ok
}

// IsTracking runs `timew get dom.active`; "1" means a session is open.
func (t *Tracker) IsTracking(ctx context.Context) (bool, error) {
	path, ok := t.BinaryPath()
	if !ok {
		return false, ErrNotInstalled
	}
	out, err := t.runner.Exec(ctx, path, "get", "dom.active")
	if err != nil {
		return false, fmt.Errorf("failed to query timewarrior status: %w", err)
	}
	return strings.TrimSpace(out) == "1", nil
}

// ShouldSendNotification decides whether a reminder fires. It never fails.
func (t *Tracker) ShouldSendNotification(ctx context.Context, enabled bool) bool {
	in := gateInput{enabled: enabled}
	if enabled {
		in.installed = t.IsInstalled()
		if in.installed {
			in.tracking, in.queryErr = t.IsTracking(ctx)
		}
	}

	send, reason := decide(in)
	t.log.Debug("timewarrior gate", "send", send, "reason", reason, "err", in.queryErr)
	return send
}

// Status aggregates installation, path and tracking state for display.
func (t *Tracker) Status(ctx context.Context) Status {
	path, installed := t.BinaryPath()
	status := Status{IsInstalled: installed, BinaryPath: path}
	if !installed {
		return status
	}
	if tracking, err := t.IsTracking(ctx); err == nil {
		status.IsTracking = &tracking
	}
	return status
}
