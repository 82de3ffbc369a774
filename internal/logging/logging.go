// Package logging configures the process-wide charmbracelet logger.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ParseLevel maps a config level name to a log.Level. Empty or unknown
// names fall back to info.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(name)
	if err != nil || name == "" {
		return log.InfoLevel
	}
	return level
}

// New builds a logger writing to w. verbose forces debug level.
func New(w io.Writer, level string, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "szmer",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(ParseLevel(level))
	}
	return logger
}

// Setup builds a logger with New and installs it as the package default.
func Setup(w io.Writer, level string, verbose bool) *log.Logger {
	logger := New(w, level, verbose)
	log.SetDefault(logger)
	return logger
}
