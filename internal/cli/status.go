package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/RevCBH/szmer/internal/reminder"
	"github.com/RevCBH/szmer/internal/timefmt"
	"github.com/RevCBH/szmer/internal/timew"
)

// statusStyles contains the lipgloss styles for the status report
type statusStyles struct {
	Title lipgloss.Style
	Label lipgloss.Style
	OK    lipgloss.Style
	Warn  lipgloss.Style
	Error lipgloss.Style
	Dim   lipgloss.Style
}

func defaultStatusStyles() statusStyles {
	return statusStyles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Label: lipgloss.NewStyle().Width(14),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NewStatusCmd creates the status command
func NewStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether reminders are installed and when the next one fires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.ShowStatus(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// ShowStatus prints the status report
func (a *App) ShowStatus(ctx context.Context, out io.Writer) error {
	svc, err := a.service()
	if err != nil {
		return err
	}

	report, err := svc.Status(ctx)
	if err != nil {
		return err
	}
	if report.SchedulerErr != nil {
		a.log().Debug("scheduler status query failed", "err", report.SchedulerErr)
	}

	fmt.Fprint(out, renderStatus(report, a.now(), defaultStatusStyles()))
	return nil
}

// renderStatus formats a report as aligned label/value lines.
func renderStatus(r *reminder.Report, now time.Time, st statusStyles) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "  %s%s\n", st.Label.Render(label+":"), value)
	}

	b.WriteString(st.Title.Render("Szmer break reminders"))
	b.WriteString("\n\n")

	if !r.Installed {
		line("Scheduler", st.Error.Render("✗ Not installed"))
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("Run 'szmer install' to set up break reminders."))
		b.WriteString("\n")
		return b.String()
	}

	line("Scheduler", schedulerState(r, st))
	if r.UnitPath != "" {
		line("Unit", st.Dim.Render(r.UnitPath))
	}

	cfg := r.Config
	line("Interval", timefmt.FormatInterval(cfg.IntervalSeconds))

	sound := cfg.NotificationSound
	if sound == "" {
		sound = st.Dim.Render("(system default)")
	}
	line("Sound", sound)

	if cfg.Paused {
		line("Reminders", st.Warn.Render("paused")+st.Dim.Render(" (run 'szmer resume')"))
	} else {
		line("Reminders", st.OK.Render("active"))
	}

	line("Next break", nextBreak(r, now, st))

	last := st.Dim.Render("never")
	if r.LastNotification != nil {
		last = humanize.RelTime(*r.LastNotification, now, "ago", "from now")
	}
	line("Last break", last)

	line("Timewarrior", trackingState(cfg.Tracking.Enabled, r.Tracking, st))
	return b.String()
}

func schedulerState(r *reminder.Report, st statusStyles) string {
	switch {
	case r.SchedulerErr != nil:
		return st.Error.Render("✗ Error checking status")
	case r.Scheduler.IsRunning:
		return st.OK.Render("✓ Running") + st.Dim.Render(" ("+r.Platform+")")
	default:
		return st.Warn.Render("⚠ Installed but not running")
	}
}

func nextBreak(r *reminder.Report, now time.Time, st statusStyles) string {
	if r.Config.Paused {
		return st.Dim.Render("none while paused")
	}
	if next := r.Scheduler.NextRun; next != nil {
		return fmt.Sprintf("%s (%s)", timefmt.FormatTimeUntil(*next, now), timefmt.Clock(*next))
	}
	return fmt.Sprintf("Every %s %s",
		timefmt.FormatInterval(r.Config.IntervalSeconds),
		st.Dim.Render("(exact time unavailable on this platform)"))
}

func trackingState(enabled bool, s timew.Status, st statusStyles) string {
	state := "off"
	if enabled {
		state = "on"
	}

	if !s.IsInstalled {
		if enabled {
			return state + st.Dim.Render(" (timew not found; reminders always sent)")
		}
		return state + st.Dim.Render(" (timew not found)")
	}

	tracking := "unknown"
	if s.IsTracking != nil {
		tracking = "not tracking"
		if *s.IsTracking {
			tracking = "tracking"
		}
	}
	return fmt.Sprintf("%s %s", state, st.Dim.Render("("+s.BinaryPath+", "+tracking+")"))
}
