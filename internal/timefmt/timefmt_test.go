package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInterval(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0 minutes"},
		{60, "1 minute"},
		{120, "2 minutes"},
		{1500, "25 minutes"},
		{1800, "30 minutes"},
		{3600, "1 hour"},
		{7200, "2 hours"},
		{3660, "1 hour 1 minute"},
		{3720, "1 hour 2 minutes"},
		{7260, "2 hours 1 minute"},
		{6480, "1 hour 48 minutes"},
		{90, "1 minute"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInterval(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatTimeUntil(t *testing.T) {
	now := time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"past", -time.Minute, "very soon"},
		{"seconds", 30 * time.Second, "very soon"},
		{"one minute", time.Minute, "in 1 minute"},
		{"minutes", 5*time.Minute + 10*time.Second, "in 5 minutes"},
		{"hour and minute", time.Hour + time.Minute + 40*time.Second, "in 1 hour 1 minute"},
		{"whole hours", 2 * time.Hour, "in 2 hours 0 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeUntil(now.Add(tt.in), now))
		})
	}
}

func TestClock(t *testing.T) {
	assert.Equal(t, "03:04 PM", Clock(time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)))
	assert.Equal(t, "09:30 AM", Clock(time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)))
}
