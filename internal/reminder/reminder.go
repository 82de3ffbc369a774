// Package reminder composes the scheduler backend, the config store and the
// notification path into the workflows the CLI exposes.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/RevCBH/szmer/internal/config"
	"github.com/RevCBH/szmer/internal/history"
	"github.com/RevCBH/szmer/internal/notify"
	"github.com/RevCBH/szmer/internal/runner"
	"github.com/RevCBH/szmer/internal/schedule"
	"github.com/RevCBH/szmer/internal/timew"
)

// Deps are the collaborators a Service drives.
type Deps struct {
	Backend  schedule.Backend
	Store    *config.Store
	Runner   runner.Runner
	Notifier notify.Notifier
	History  *history.Log
	Logger   *log.Logger
	Now      func() time.Time
}

// Service runs install, uninstall, stop, resume, status and notify.
type Service struct {
	backend  schedule.Backend
	store    *config.Store
	runner   runner.Runner
	notifier notify.Notifier
	history  *history.Log
	log      *log.Logger
	now      func() time.Time
}

// New creates a Service.
func New(d Deps) *Service {
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Service{
		backend:  d.Backend,
		store:    d.Store,
		runner:   d.Runner,
		notifier: d.Notifier,
		history:  d.History,
		log:      d.Logger,
		now:      d.Now,
	}
}

// Backend exposes the scheduler backend, e.g. for IsInstalled checks
// before prompting.
func (s *Service) Backend() schedule.Backend {
	return s.backend
}

// Tracker returns a Timewarrior tracker for the given config.
func (s *Service) Tracker(cfg *config.Config) *timew.Tracker {
	return timew.New(s.runner, cfg.Tracking.Command, s.log)
}

// InstallRequest holds the choices made before installing.
type InstallRequest struct {
	IntervalSeconds int
	Sound           string
	Tracking        bool
}

// Install registers the scheduler unit and then persists the config.
// There is no rollback: if the config write fails the unit stays installed
// and the error says so.
func (s *Service) Install(ctx context.Context, req InstallRequest) (*config.Config, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	cfg.IntervalSeconds = req.IntervalSeconds
	cfg.NotificationSound = req.Sound
	cfg.Tracking.Enabled = req.Tracking
	cfg.Paused = false
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := s.backend.Install(ctx, req.IntervalSeconds); err != nil {
		return nil, err
	}
	s.log.Debug("scheduler unit installed", "platform", s.backend.Platform(), "interval", req.IntervalSeconds)

	if err := s.store.Save(cfg); err != nil {
		return nil, fmt.Errorf("scheduler installed but saving config failed: %w", err)
	}
	return cfg, nil
}

// Uninstall removes the scheduler unit. removed is false when nothing was
// installed, which is not an error.
func (s *Service) Uninstall(ctx context.Context) (removed bool, err error) {
	installed := s.backend.IsInstalled()
	if err := s.backend.Uninstall(ctx); err != nil {
		return false, err
	}
	return installed, nil
}

// Stop pauses reminders. changed is false when they were already paused.
func (s *Service) Stop() (changed bool, err error) {
	return s.setPaused(true)
}

// Resume un-pauses reminders. changed is false when they were already running.
func (s *Service) Resume() (changed bool, err error) {
	return s.setPaused(false)
}

// setPaused flips the pause flag. The scheduler is not touched; the flag is
// consulted each time notify fires.
func (s *Service) setPaused(paused bool) (bool, error) {
	if !s.backend.IsInstalled() {
		return false, fmt.Errorf("%w; run 'szmer install' first", schedule.ErrNotInstalled)
	}

	cfg, err := s.store.Load()
	if err != nil {
		return false, err
	}
	if cfg.Paused == paused {
		return false, nil
	}

	cfg.Paused = paused
	if err := s.store.Save(cfg); err != nil {
		return false, err
	}
	return true, nil
}

// Report is everything the status command shows.
type Report struct {
	Installed bool
	Platform  string
	UnitPath  string

	Scheduler    schedule.Status
	SchedulerErr error

	Config           *config.Config
	LastNotification *time.Time
	Tracking         timew.Status
}

// Status gathers a Report. Scheduler and history failures are recorded in
// the report rather than returned; only a config load failure is fatal.
func (s *Service) Status(ctx context.Context) (*Report, error) {
	report := &Report{
		Installed: s.backend.IsInstalled(),
		Platform:  s.backend.Platform(),
	}
	report.UnitPath, _ = s.backend.UnitPath()
	if !report.Installed {
		return report, nil
	}

	cfg, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	config.ApplyEnvOverrides(cfg)
	report.Config = cfg

	report.Scheduler, report.SchedulerErr = s.backend.Status(ctx)

	if s.history != nil {
		last, ok, err := s.history.Last()
		if err != nil {
			s.log.Debug("reading notification history failed", "err", err)
		} else if ok {
			report.LastNotification = &last
		}
	}

	report.Tracking = s.Tracker(cfg).Status(ctx)
	return report, nil
}

// Outcome is what a notify invocation did.
type Outcome int

const (
	Sent Outcome = iota
	SkippedPaused
	SkippedNotTracking
)

func (o Outcome) String() string {
	switch o {
	case Sent:
		return "sent"
	case SkippedPaused:
		return "skipped: paused"
	case SkippedNotTracking:
		return "skipped: not tracking"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// NotifyRequest tunes a single notify invocation.
type NotifyRequest struct {
	// Message replaces the random tip.
	Message string

	// Force bypasses the pause flag and the Timewarrior gate.
	Force bool
}

// ErrNoNotifier indicates the Service was built without a Notifier.
var ErrNoNotifier = errors.New("no notifier configured")

// Notify is what the scheduler runs on every tick.
func (s *Service) Notify(ctx context.Context, req NotifyRequest) (Outcome, error) {
	cfg, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	config.ApplyEnvOverrides(cfg)

	if !req.Force {
		if cfg.Paused {
			s.log.Debug("reminders paused, skipping notification")
			return SkippedPaused, nil
		}
		if !s.Tracker(cfg).ShouldSendNotification(ctx, cfg.Tracking.Enabled) {
			s.log.Debug("no active timewarrior session, skipping notification")
			return SkippedNotTracking, nil
		}
	}

	if s.notifier == nil {
		return 0, ErrNoNotifier
	}
	if err := s.notifier.Send(ctx, notify.BreakReminder(cfg.NotificationSound, req.Message)); err != nil {
		return 0, err
	}

	if s.history != nil {
		if err := s.history.Record(s.now()); err != nil {
			s.log.Warn("failed to record notification time", "err", err)
		}
	}
	return Sent, nil
}
