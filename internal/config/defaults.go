package config

const (
	DefaultConfigDir       = ".config/szmer"
	DefaultConfigFile      = "config.yaml"
	DefaultIntervalSeconds = 3600
	DefaultLogLevel        = "info"

	MinIntervalSeconds = 60
	MaxIntervalSeconds = 24 * 60 * 60
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		IntervalSeconds: DefaultIntervalSeconds,
		LogLevel:        DefaultLogLevel,
	}
}
