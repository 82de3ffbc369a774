package schedule

import (
	"context"
	"fmt"
	"path/filepath"

	"howett.net/plist"

	"github.com/RevCBH/szmer/internal/runner"
)

const (
	launchctl = "launchctl"

	launchdStdoutPath = "/tmp/szmer.log"
	launchdStderrPath = "/tmp/szmer.err"
)

// launchAgent is the property list launchd reads from ~/Library/LaunchAgents.
type launchAgent struct {
	Label             string   `plist:"Label"`
	ProgramArguments  []string `plist:"ProgramArguments"`
	StartInterval     int      `plist:"StartInterval"`
	RunAtLoad         bool     `plist:"RunAtLoad"`
	StandardOutPath   string   `plist:"StandardOutPath"`
	StandardErrorPath string   `plist:"StandardErrorPath"`
}

// launchd runs szmer as a per-user launch agent with a StartInterval.
type launchd struct {
	files unitFiles
	label string
}

func newLaunchd(opts Options) *launchd {
	return &launchd{
		files: newUnitFiles(opts, func(home string) string {
			return filepath.Join(home, "Library", "LaunchAgents")
		}),
		label: opts.Label,
	}
}

func (l *launchd) Platform() string { return "launchd" }

func (l *launchd) UnitPath() (string, error) {
	return l.files.path(l.label + ".plist")
}

func renderLaunchAgent(label, binary string, intervalSeconds int) ([]byte, error) {
	agent := launchAgent{
		Label:             label,
		ProgramArguments:  []string{binary, "notify"},
		StartInterval:     intervalSeconds,
		RunAtLoad:         false,
		StandardOutPath:   launchdStdoutPath,
		StandardErrorPath: launchdStderrPath,
	}
	return plist.MarshalIndent(agent, plist.XMLFormat, "\t")
}

func (l *launchd) Install(ctx context.Context, intervalSeconds int) error {
	path, err := l.UnitPath()
	if err != nil {
		return err
	}
	if err := l.files.checkFree(path); err != nil {
		return err
	}
	if err := validInterval(intervalSeconds); err != nil {
		return err
	}

	binary, err := l.files.executable()
	if err != nil {
		return err
	}

	body, err := renderLaunchAgent(l.label, binary, intervalSeconds)
	if err != nil {
		return fmt.Errorf("render launch agent: %w", err)
	}
	if err := l.files.write(path, body); err != nil {
		return err
	}

	// The plist stays on disk if loading fails so uninstall can clean it up.
	return l.files.call(ctx, "Failed to load launchd agent", launchctl, "load", path)
}

func (l *launchd) Uninstall(ctx context.Context) error {
	path, err := l.UnitPath()
	if err != nil {
		return err
	}
	if !l.files.exists(path) {
		return nil
	}

	if err := l.files.call(ctx, "launchctl unload failed", launchctl, "unload", path); err != nil {
		l.files.opts.Logger.Warn("Failed to unload service, continuing with service file removal", "err", err)
	}

	return l.files.remove(path)
}

func (l *launchd) IsInstalled() bool {
	path, err := l.UnitPath()
	if err != nil {
		return false
	}
	return l.files.exists(path)
}

func (l *launchd) Status(ctx context.Context) (Status, error) {
	if !l.IsInstalled() {
		return Status{}, ErrNotInstalled
	}

	// launchd does not expose the next fire time of a StartInterval job.
	_, err := l.files.opts.Runner.Exec(ctx, launchctl, "list", l.label)
	if err != nil && !runner.IsExitError(err) {
		return Status{}, fmt.Errorf("%w: %w", ErrServiceCall, err)
	}
	return Status{IsRunning: err == nil}, nil
}
