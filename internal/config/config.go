package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrLoad wraps every failure to read or parse the config file.
var ErrLoad = errors.New("failed to load config")

// Config is the persisted reminder configuration.
type Config struct {
	// NotificationSound is the sound name played with each reminder.
	// Empty means the system default.
	NotificationSound string `yaml:"notification_sound,omitempty"`

	// Paused suppresses reminders without touching the scheduler.
	Paused bool `yaml:"paused"`

	// IntervalSeconds is how often the scheduler fires. Informational once
	// installed; the unit file is authoritative.
	IntervalSeconds int `yaml:"interval_seconds"`

	// Tracking configures the Timewarrior gate
	Tracking TrackingConfig `yaml:"tracking"`

	// LogLevel controls log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level,omitempty"`
}

// TrackingConfig controls the Timewarrior integration.
type TrackingConfig struct {
	// Enabled skips reminders while no Timewarrior session is open.
	Enabled bool `yaml:"enabled"`

	// Command overrides the timew binary name or path.
	Command string `yaml:"command,omitempty"`
}

// Store reads and writes a Config file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore returns a store for path on fs. A nil fs uses the OS filesystem.
func NewStore(fs afero.Fs, path string) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs, path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// DefaultPath returns $SZMER_CONFIG, or ~/.config/szmer/config.yaml.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile), nil
}

// Load reads the config file. A missing file yields DefaultConfig.
func (s *Store) Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrLoad, s.path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return cfg, nil
}

// Save validates cfg and writes it, creating the parent directory.
func (s *Store) Save(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
