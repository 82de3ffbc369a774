// Package timefmt renders reminder intervals and countdowns for people.
package timefmt

import (
	"fmt"
	"time"
)

// Plural returns unit with an "s" appended unless n is 1.
func Plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatInterval renders whole hours and minutes, e.g. "1 hour 30 minutes".
// Leftover seconds are dropped.
func FormatInterval(seconds int) string {
	hours := int64(seconds / 3600)
	minutes := int64(seconds % 3600 / 60)

	switch {
	case hours == 0:
		return Plural(minutes, "minute")
	case minutes == 0:
		return Plural(hours, "hour")
	default:
		return Plural(hours, "hour") + " " + Plural(minutes, "minute")
	}
}

// FormatTimeUntil renders the wait from now to next, e.g. "in 5 minutes".
// Anything under a minute, or in the past, is "very soon".
func FormatTimeUntil(next, now time.Time) string {
	d := next.Sub(now)
	if d < time.Minute {
		return "very soon"
	}

	hours := int64(d / time.Hour)
	minutes := int64(d % time.Hour / time.Minute)
	if hours == 0 {
		return "in " + Plural(minutes, "minute")
	}
	return "in " + Plural(hours, "hour") + " " + Plural(minutes, "minute")
}

// Clock renders t as a 12-hour wall clock time, e.g. "03:04 PM".
func Clock(t time.Time) string {
	return t.Format("03:04 PM")
}
