package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/RevCBH/szmer/internal/config"
	"github.com/RevCBH/szmer/internal/reminder"
	"github.com/RevCBH/szmer/internal/schedule"
	"github.com/RevCBH/szmer/internal/sound"
	"github.com/RevCBH/szmer/internal/timefmt"
	"github.com/RevCBH/szmer/internal/timew"
)

// InstallOptions holds flags for the install command
type InstallOptions struct {
	Interval   int    // minutes; 0 = ask
	Sound      string // "" = ask
	NoSound    bool
	Tracking   bool
	NoTracking bool
}

// NewInstallCmd creates the install command
func NewInstallCmd(app *App) *cobra.Command {
	opts := InstallOptions{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Register the break reminder with the system scheduler",
		Long: `Install asks how often you want a break, which sound to play and whether to
follow Timewarrior, then registers a recurring job with launchd (macOS) or a
systemd user timer (Linux).

Examples:
  szmer install                              # Interactive setup
  szmer install --interval 25 --no-sound     # Pomodoro, silent
  szmer install --interval 60 --tracking     # Hourly, only while tracking time`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunInstall(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.Interval, "interval", 0,
		fmt.Sprintf("Reminder interval in minutes (%d-%d)", MinCustomMinutes, MaxCustomMinutes))
	cmd.Flags().StringVar(&opts.Sound, "sound", "", "Notification sound name")
	cmd.Flags().BoolVar(&opts.NoSound, "no-sound", false, "Use the system default sound")
	cmd.Flags().BoolVar(&opts.Tracking, "tracking", false, "Only remind while Timewarrior is tracking")
	cmd.Flags().BoolVar(&opts.NoTracking, "no-tracking", false, "Remind regardless of Timewarrior")
	cmd.MarkFlagsMutuallyExclusive("sound", "no-sound")
	cmd.MarkFlagsMutuallyExclusive("tracking", "no-tracking")

	return cmd
}

// RunInstall collects the install choices and installs the reminder
func (a *App) RunInstall(ctx context.Context, out io.Writer, opts InstallOptions) error {
	svc, err := a.service()
	if err != nil {
		return err
	}

	backend := svc.Backend()
	if backend.IsInstalled() {
		return fmt.Errorf("%w; run 'szmer uninstall' first if you want to reinstall",
			schedule.ErrAlreadyInstalled)
	}

	interactive := a.isTerminal()
	prompter := a.prompter
	if prompter == nil {
		prompter = &termPrompter{in: a.stdin, out: out}
	}

	minutes, err := a.chooseInterval(ctx, opts, interactive, prompter)
	if err != nil {
		return err
	}
	soundName, err := a.chooseSound(ctx, opts, interactive, prompter)
	if err != nil {
		return err
	}
	tracking, err := a.chooseTracking(opts, interactive, prompter)
	if err != nil {
		return err
	}

	cfg, err := svc.Install(ctx, reminder.InstallRequest{
		IntervalSeconds: minutes * 60,
		Sound:           soundName,
		Tracking:        tracking,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Szmer installed (%s).\n", backend.Platform())
	fmt.Fprintf(out, "  You'll be reminded to take a break every %s.\n", timefmt.FormatInterval(cfg.IntervalSeconds))
	if exe, err := a.executable(); err == nil {
		fmt.Fprintf(out, "\n⚠ The scheduler runs %s.\n", exe)
		fmt.Fprintln(out, "  Don't move or delete this binary; reinstall if you do.")
	}
	fmt.Fprintln(out, "\nTip: run 'szmer notify --force' to send a test notification.")
	return nil
}

func (a *App) chooseInterval(ctx context.Context, opts InstallOptions, interactive bool, p Prompter) (int, error) {
	if opts.Interval != 0 {
		return parseMinutes(fmt.Sprint(opts.Interval))
	}
	if !interactive {
		return 0, fmt.Errorf("%w: pass --interval <minutes>", ErrNoTerminal)
	}
	return p.PickInterval(ctx)
}

// chooseSound never fails for lack of sounds: no discovered sounds, or an
// unsupported platform, means the system default.
func (a *App) chooseSound(ctx context.Context, opts InstallOptions, interactive bool, p Prompter) (string, error) {
	if opts.NoSound {
		return "", nil
	}

	sounds, err := sound.Available(a.fs, a.goos)
	if err != nil {
		a.log().Debug("sound discovery unavailable", "err", err)
	}

	if opts.Sound != "" {
		if len(sounds) > 0 && !slices.Contains(sounds, opts.Sound) {
			return "", fmt.Errorf("unknown sound %q; available: %v", opts.Sound, sounds)
		}
		return opts.Sound, nil
	}

	if !interactive || len(sounds) == 0 {
		return "", nil
	}
	return p.PickSound(ctx, sounds)
}

// chooseTracking only offers the integration when timew is on PATH.
func (a *App) chooseTracking(opts InstallOptions, interactive bool, p Prompter) (bool, error) {
	if opts.NoTracking {
		return false, nil
	}

	path, found := timew.New(a.runner, os.Getenv(config.EnvTimewCommand), a.log()).BinaryPath()
	if opts.Tracking {
		if !found {
			a.log().Warn("timewarrior not found; reminders will be sent until it is installed")
		}
		return true, nil
	}

	if !interactive || !found {
		return false, nil
	}
	return p.ConfirmTracking(path)
}
