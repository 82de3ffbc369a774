// Package history records when reminders were delivered. Each delivery
// appends one Unix timestamp line to a log file.
package history

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
)

const (
	DefaultCacheDir = ".cache/szmer"
	DefaultFile     = "last_notification"
)

// Log is an append-only timestamp file.
type Log struct {
	fs   afero.Fs
	path string
}

// New returns a Log at path on fs. A nil fs uses the OS filesystem.
func New(fs afero.Fs, path string) *Log {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Log{fs: fs, path: path}
}

// DefaultPath returns ~/.cache/szmer/last_notification.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, DefaultCacheDir, DefaultFile), nil
}

// Record appends t to the log.
func (l *Log) Record(t time.Time) error {
	if err := l.fs.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	f, err := l.fs.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d\n", t.Unix()); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// Last returns the most recent entry in local time. ok is false when the
// log is missing or empty.
func (l *Log) Last() (last time.Time, ok bool, err error) {
	f, err := l.fs.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	var line string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if text := strings.TrimSpace(scanner.Text()); text != "" {
			line = text
		}
	}
	if err := scanner.Err(); err != nil {
		return time.Time{}, false, fmt.Errorf("read history: %w", err)
	}
	if line == "" {
		return time.Time{}, false, nil
	}

	sec, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid timestamp %q: %w", line, err)
	}
	return time.Unix(sec, 0), true, nil
}
