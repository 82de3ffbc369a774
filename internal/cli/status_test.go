package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RevCBH/szmer/internal/config"
	"github.com/RevCBH/szmer/internal/reminder"
	"github.com/RevCBH/szmer/internal/schedule"
	"github.com/RevCBH/szmer/internal/timew"
)

func installedReport(mutate func(*reminder.Report)) *reminder.Report {
	r := &reminder.Report{
		Installed: true,
		Platform:  "launchd",
		Config:    config.DefaultConfig(),
	}
	if mutate != nil {
		mutate(r)
	}
	return r
}

func TestRenderStatus_SchedulerStates(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.Local)

	tests := []struct {
		name   string
		report *reminder.Report
		want   string
	}{
		{
			name:   "not installed",
			report: &reminder.Report{},
			want:   "✗ Not installed",
		},
		{
			name: "running",
			report: installedReport(func(r *reminder.Report) {
				r.Scheduler.IsRunning = true
			}),
			want: "✓ Running",
		},
		{
			name:   "stopped",
			report: installedReport(nil),
			want:   "⚠ Installed but not running",
		},
		{
			name: "query failed",
			report: installedReport(func(r *reminder.Report) {
				r.SchedulerErr = errors.Join(schedule.ErrServiceCall, errors.New("no launchctl"))
			}),
			want: "✗ Error checking status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderStatus(tt.report, now, defaultStatusStyles()), tt.want)
		})
	}
}

func TestRenderStatus_NextBreakWithoutExactTime(t *testing.T) {
	now := time.Now()
	out := renderStatus(installedReport(func(r *reminder.Report) {
		r.Scheduler.IsRunning = true
		r.Config.IntervalSeconds = 5400
	}), now, defaultStatusStyles())

	assert.Contains(t, out, "Every 1 hour 30 minutes")
	assert.Contains(t, out, "(exact time unavailable on this platform)")
	assert.Contains(t, out, "never")
}

func TestRenderStatus_Paused(t *testing.T) {
	out := renderStatus(installedReport(func(r *reminder.Report) {
		r.Config.Paused = true
		r.Config.NotificationSound = "Glass"
	}), time.Now(), defaultStatusStyles())

	assert.Contains(t, out, "paused")
	assert.Contains(t, out, "szmer resume")
	assert.Contains(t, out, "none while paused")
	assert.Contains(t, out, "Glass")
}

func TestTrackingState(t *testing.T) {
	yes, no := true, false
	st := defaultStatusStyles()

	assert.Contains(t, trackingState(false, timew.Status{}, st), "timew not found")
	assert.Contains(t, trackingState(true, timew.Status{}, st), "reminders always sent")

	installed := timew.Status{IsInstalled: true, BinaryPath: "/usr/bin/timew"}
	assert.Contains(t, trackingState(true, installed, st), "/usr/bin/timew, unknown")

	installed.IsTracking = &yes
	assert.Contains(t, trackingState(true, installed, st), "/usr/bin/timew, tracking")

	installed.IsTracking = &no
	out := trackingState(false, installed, st)
	assert.Contains(t, out, "off")
	assert.Contains(t, out, "not tracking")
}
