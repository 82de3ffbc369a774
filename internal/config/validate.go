package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

var validLogLevels = map[string]bool{
	"":      true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks all config values.
// Returns nil if valid, or joined errors for all validation failures.
func (c *Config) Validate() error {
	var errs []error

	if c.IntervalSeconds < MinIntervalSeconds || c.IntervalSeconds > MaxIntervalSeconds {
		errs = append(errs, &ValidationError{
			Field:   "interval_seconds",
			Value:   c.IntervalSeconds,
			Message: fmt.Sprintf("must be between %d and %d", MinIntervalSeconds, MaxIntervalSeconds),
		})
	}

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   c.LogLevel,
			Message: "must be one of debug, info, warn, error",
		})
	}

	return errors.Join(errs...)
}
