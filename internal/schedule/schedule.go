// Package schedule installs szmer into the host's per-user scheduling service
// and reports on it.
//
// A unit file on disk is the only record of an installation: IsInstalled is
// an existence check on that path and nothing else is persisted.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/RevCBH/szmer/internal/runner"
)

var (
	// ErrAlreadyInstalled indicates a unit file already exists
	ErrAlreadyInstalled = errors.New("service is already installed")

	// ErrNotInstalled indicates no unit file exists
	ErrNotInstalled = errors.New("scheduler is not installed")

	// ErrUnsupportedPlatform indicates the running OS has no backend
	ErrUnsupportedPlatform = errors.New("scheduling is not supported on this platform")

	// ErrBinaryPath indicates the running executable could not be resolved
	ErrBinaryPath = errors.New("failed to resolve executable path")

	// ErrIO indicates a unit file could not be written or removed
	ErrIO = errors.New("unit file I/O failed")

	// ErrServiceCall indicates the scheduling service rejected a request
	ErrServiceCall = errors.New("scheduler service call failed")
)

// Status is a point-in-time view of the installed job. It is never cached.
type Status struct {
	// IsRunning is true when the scheduling service reports the job loaded/active.
	IsRunning bool

	// NextRun is the next fire time, or nil when the platform does not expose it.
	NextRun *time.Time
}

// Backend is one platform's scheduling-service integration.
type Backend interface {
	// Platform names the integration ("launchd", "systemd", "unsupported").
	Platform() string

	// UnitPath returns where the unit file lives.
	UnitPath() (string, error)

	// Install writes the unit file and registers it to fire `szmer notify`
	// every intervalSeconds.
	Install(ctx context.Context, intervalSeconds int) error

	// Uninstall deregisters and removes the unit. It succeeds when nothing
	// is installed.
	Uninstall(ctx context.Context) error

	// IsInstalled reports whether the unit file exists. It never fails.
	IsInstalled() bool

	// Status queries the scheduling service. Returns ErrNotInstalled when
	// IsInstalled is false.
	Status(ctx context.Context) (Status, error)
}

// Options configures a Backend. Zero values select the real environment.
type Options struct {
	// Dir overrides the directory holding unit files.
	Dir string

	// HomeDir is used to derive the default Dir. Defaults to os.UserHomeDir.
	HomeDir string

	// Label is the launchd job label; the plist is named Label + ".plist".
	Label string

	// Name is the systemd unit base name (Name.service, Name.timer).
	Name string

	// Executable resolves the binary the job should run.
	Executable func() (string, error)

	Runner runner.Runner
	Fs     afero.Fs
	Logger *log.Logger
}

const (
	DefaultLabel = "com.szmer.reminder"
	DefaultName  = "szmer"
)

// New returns the backend for goos. Callers pass runtime.GOOS once at start.
func New(goos string, opts Options) Backend {
	opts = opts.withDefaults()
	switch goos {
	case "darwin":
		return newLaunchd(opts)
	case "linux":
		return newSystemd(opts)
	default:
		return unsupported{}
	}
}

func (o Options) withDefaults() Options {
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Executable == nil {
		o.Executable = ExecutablePath
	}
	if o.Runner == nil {
		o.Runner = runner.New()
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o
}

// ExecutablePath returns the canonical absolute path of the running binary.
func ExecutablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Abs(exe)
}

// unitFiles holds the file handling shared by the real backends.
type unitFiles struct {
	opts Options
	dir  string
	err  error
}

func newUnitFiles(opts Options, defaultDir func(home string) string) unitFiles {
	if opts.Dir != "" {
		return unitFiles{opts: opts, dir: opts.Dir}
	}
	home := opts.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return unitFiles{opts: opts, err: fmt.Errorf("locate home directory: %w", err)}
		}
	}
	return unitFiles{opts: opts, dir: defaultDir(home)}
}

func (u unitFiles) path(name string) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	return filepath.Join(u.dir, name), nil
}

func (u unitFiles) exists(path string) bool {
	ok, err := afero.Exists(u.opts.Fs, path)
	return err == nil && ok
}

func (u unitFiles) executable() (string, error) {
	exe, err := u.opts.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBinaryPath, err)
	}
	if !filepath.IsAbs(exe) {
		return "", fmt.Errorf("%w: %q is not absolute", ErrBinaryPath, exe)
	}
	return exe, nil
}

func (u unitFiles) write(path string, data []byte) error {
	if err := u.opts.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if err := afero.WriteFile(u.opts.Fs, path, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	u.opts.Logger.Debug("wrote unit file", "path", path)
	return nil
}

func (u unitFiles) remove(path string) error {
	if err := u.opts.Fs.Remove(path); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	u.opts.Logger.Debug("removed unit file", "path", path)
	return nil
}

// checkFree fails with ErrAlreadyInstalled when path exists.
func (u unitFiles) checkFree(path string) error {
	if u.exists(path) {
		return fmt.Errorf("%w at %s; run 'szmer uninstall' first if you want to reinstall",
			ErrAlreadyInstalled, path)
	}
	return nil
}

func (u unitFiles) call(ctx context.Context, label, name string, args ...string) error {
	if err := runner.Call(ctx, u.opts.Runner, label, name, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrServiceCall, err)
	}
	return nil
}

func validInterval(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("invalid interval: %d seconds", seconds)
	}
	return nil
}
