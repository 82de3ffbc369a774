package config

import "os"

const (
	EnvConfigPath   = "SZMER_CONFIG"
	EnvLogLevel     = "SZMER_LOG_LEVEL"
	EnvTimewCommand = "SZMER_TIMEW_COMMAND"
)

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: EnvLogLevel,
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
	{
		envVar: EnvTimewCommand,
		apply: func(c *Config, v string) {
			c.Tracking.Command = v
		},
	},
}

// ApplyEnvOverrides modifies cfg in place with environment variable values.
// Callers apply it to configs they only read; a saved config would persist
// the overrides.
func ApplyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
