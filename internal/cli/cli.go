package cli

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RevCBH/szmer/internal/config"
	"github.com/RevCBH/szmer/internal/history"
	"github.com/RevCBH/szmer/internal/logging"
	"github.com/RevCBH/szmer/internal/notify"
	"github.com/RevCBH/szmer/internal/reminder"
	"github.com/RevCBH/szmer/internal/runner"
	"github.com/RevCBH/szmer/internal/schedule"
)

// VersionInfo holds build-time version details
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// App represents the CLI application with all wired dependencies
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Flags
	verbose    bool
	configPath string

	// Version information
	versionInfo VersionInfo

	// Environment. Zero values select the real system; tests replace them.
	goos        string
	fs          afero.Fs
	runner      runner.Runner
	executable  func() (string, error)
	historyPath string
	backend     schedule.Backend
	notifier    notify.Notifier
	prompter    Prompter
	stdin       io.Reader
	isTerminal  func() bool
	now         func() time.Time

	logger *log.Logger
}

// New creates a new CLI application
func New() *App {
	app := &App{
		goos:       runtime.GOOS,
		fs:         afero.NewOsFs(),
		runner:     runner.New(),
		executable: schedule.ExecutablePath,
		stdin:      os.Stdin,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		now: time.Now,
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application
func (a *App) Execute() error {
	return a.ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI application with ctx passed to every command
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string for the version command
func (a *App) SetVersion(version, commit, date string) {
	a.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// setupRootCmd configures the root Cobra command
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "szmer",
		Short: "Gentle break reminders on a fixed interval",
		Long: `Szmer registers a recurring job with the system scheduler (launchd on macOS,
systemd user timers on Linux) that reminds you to step away from the screen.
Nothing stays running between reminders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogging(cmd.ErrOrStderr())
		},
	}

	a.rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Verbose output")
	a.rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Config file (default $SZMER_CONFIG or ~/.config/szmer/config.yaml)")

	a.rootCmd.AddCommand(
		NewInstallCmd(a),
		NewUninstallCmd(a),
		NewNotifyCmd(a),
		NewStopCmd(a),
		NewResumeCmd(a),
		NewStatusCmd(a),
		NewVersionCmd(a),
	)
}

// setupLogging picks the level from --verbose, then the config file, then
// SZMER_LOG_LEVEL. An unreadable config only costs its log level.
func (a *App) setupLogging(w io.Writer) {
	level := os.Getenv(config.EnvLogLevel)
	if store, err := a.store(); err == nil {
		if cfg, err := store.Load(); err == nil {
			config.ApplyEnvOverrides(cfg)
			level = cfg.LogLevel
		}
	}
	a.logger = logging.Setup(w, level, a.verbose)
}

func (a *App) log() *log.Logger {
	if a.logger == nil {
		return log.Default()
	}
	return a.logger
}

func (a *App) store() (*config.Store, error) {
	path := a.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return config.NewStore(a.fs, path), nil
}

func (a *App) scheduleBackend() schedule.Backend {
	if a.backend != nil {
		return a.backend
	}
	return schedule.New(a.goos, schedule.Options{
		Executable: a.executable,
		Runner:     a.runner,
		Fs:         a.fs,
		Logger:     a.log(),
	})
}

// service wires a reminder.Service from the App's environment.
func (a *App) service() (*reminder.Service, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}

	historyPath := a.historyPath
	if historyPath == "" {
		historyPath, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	notifier := a.notifier
	if notifier == nil {
		notifier = notify.New(a.goos, a.runner)
	}

	return reminder.New(reminder.Deps{
		Backend:  a.scheduleBackend(),
		Store:    store,
		Runner:   a.runner,
		Notifier: notifier,
		History:  history.New(a.fs, historyPath),
		Logger:   a.log(),
		Now:      a.now,
	}), nil
}
