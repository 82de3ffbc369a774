package schedule

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/unit"

	"github.com/RevCBH/szmer/internal/runner"
)

const (
	systemctl = "systemctl"

	nextElapseProperty = "NextElapseUSecRealtime"
)

// systemd runs szmer as a oneshot user service driven by a companion timer.
type systemd struct {
	files unitFiles
	name  string
}

func newSystemd(opts Options) *systemd {
	return &systemd{
		files: newUnitFiles(opts, func(home string) string {
			base := os.Getenv("XDG_CONFIG_HOME")
			if base == "" || !filepath.IsAbs(base) {
				base = filepath.Join(home, ".config")
			}
			return filepath.Join(base, "systemd", "user")
		}),
		name: opts.Name,
	}
}

func (s *systemd) Platform() string { return "systemd" }

func (s *systemd) serviceName() string { return s.name + ".service" }
func (s *systemd) timerName() string   { return s.name + ".timer" }

func (s *systemd) UnitPath() (string, error) {
	return s.files.path(s.serviceName())
}

func (s *systemd) timerPath() (string, error) {
	return s.files.path(s.timerName())
}

// execArg quotes a path for ExecStart when it contains whitespace.
func execArg(path string) string {
	if strings.ContainsAny(path, " \t") {
		return strconv.Quote(path)
	}
	return path
}

func renderService(binary string) ([]byte, error) {
	return serialize([]*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "Szmer break reminder"),
		unit.NewUnitOption("Unit", "After", "default.target"),
		unit.NewUnitOption("Service", "Type", "oneshot"),
		unit.NewUnitOption("Service", "ExecStart", execArg(binary)+" notify"),
		unit.NewUnitOption("Install", "WantedBy", "default.target"),
	})
}

func renderTimer(serviceName string, intervalSeconds int) ([]byte, error) {
	interval := strconv.Itoa(intervalSeconds)
	return serialize([]*unit.UnitOption{
		unit.NewUnitOption("Unit", "Description", "Szmer break reminder timer"),
		unit.NewUnitOption("Unit", "Requires", serviceName),
		unit.NewUnitOption("Timer", "OnBootSec", interval),
		unit.NewUnitOption("Timer", "OnUnitActiveSec", interval),
		unit.NewUnitOption("Timer", "Persistent", "true"),
		unit.NewUnitOption("Install", "WantedBy", "timers.target"),
	})
}

func serialize(opts []*unit.UnitOption) ([]byte, error) {
	return io.ReadAll(unit.Serialize(opts))
}

func (s *systemd) Install(ctx context.Context, intervalSeconds int) error {
	servicePath, err := s.UnitPath()
	if err != nil {
		return err
	}
	if err := s.files.checkFree(servicePath); err != nil {
		return err
	}
	if err := validInterval(intervalSeconds); err != nil {
		return err
	}
	timerPath, err := s.timerPath()
	if err != nil {
		return err
	}

	binary, err := s.files.executable()
	if err != nil {
		return err
	}

	// The service unit carries no timing; the timer does.
	service, err := renderService(binary)
	if err != nil {
		return fmt.Errorf("render service unit: %w", err)
	}
	if err := s.files.write(servicePath, service); err != nil {
		return err
	}

	if err := s.files.call(ctx, "Failed to reload systemd", systemctl, "--user", "daemon-reload"); err != nil {
		return err
	}

	timer, err := renderTimer(s.serviceName(), intervalSeconds)
	if err != nil {
		return fmt.Errorf("render timer unit: %w", err)
	}
	if err := s.files.write(timerPath, timer); err != nil {
		return err
	}

	return s.files.call(ctx, "Failed to enable systemd timer",
		systemctl, "--user", "enable", "--now", s.timerName())
}

func (s *systemd) Uninstall(ctx context.Context) error {
	servicePath, err := s.UnitPath()
	if err != nil {
		return err
	}
	if !s.files.exists(servicePath) {
		return nil
	}

	log := s.files.opts.Logger
	if err := s.files.call(ctx, "Failed to disable systemd timer",
		systemctl, "--user", "disable", "--now", s.timerName()); err != nil {
		log.Warn("Failed to unload service, continuing with service file removal", "err", err)
	}

	if err := s.files.remove(servicePath); err != nil {
		return err
	}

	timerPath, err := s.timerPath()
	if err != nil {
		return err
	}
	if s.files.exists(timerPath) {
		if err := s.files.remove(timerPath); err != nil {
			return err
		}
	}

	if err := s.files.call(ctx, "Failed to reload systemd", systemctl, "--user", "daemon-reload"); err != nil {
		log.Warn("systemd reload after uninstall failed", "err", err)
	}
	return nil
}

func (s *systemd) IsInstalled() bool {
	path, err := s.UnitPath()
	if err != nil {
		return false
	}
	return s.files.exists(path)
}

func (s *systemd) Status(ctx context.Context) (Status, error) {
	if !s.IsInstalled() {
		return Status{}, ErrNotInstalled
	}

	r := s.files.opts.Runner
	if _, err := r.Exec(ctx, systemctl, "--user", "is-active", s.timerName()); err != nil {
		if !runner.IsExitError(err) {
			return Status{}, fmt.Errorf("%w: %w", ErrServiceCall, err)
		}
		s.files.opts.Logger.Debug("timer not active", "err", err)
		return Status{IsRunning: false}, nil
	}

	status := Status{IsRunning: true}
	out, err := r.Exec(ctx, systemctl, "--user", "show", s.timerName(), "-p", nextElapseProperty)
	if err != nil {
		s.files.opts.Logger.Debug("next elapse query failed", "err", err)
		return status, nil
	}
	if next, ok := ParseNextElapse(out); ok {
		status.NextRun = &next
	}
	return status, nil
}

// ParseNextElapse parses `systemctl show -p NextElapseUSecRealtime` output,
// a microsecond Unix timestamp, into local time. Anything else yields false.
func ParseNextElapse(output string) (time.Time, bool) {
	value, ok := strings.CutPrefix(output, nextElapseProperty+"=")
	if !ok {
		return time.Time{}, false
	}
	usec, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || usec <= 0 {
		return time.Time{}, false
	}
	return time.UnixMicro(usec).Local(), true
}
