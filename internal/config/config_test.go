package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/user/.config/szmer/config.yaml"

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), testPath)

	cfg, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultIntervalSeconds, cfg.IntervalSeconds)
	assert.False(t, cfg.Paused)
	assert.Empty(t, cfg.NotificationSound)
	assert.False(t, cfg.Tracking.Enabled)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("paused: true\n"), 0644))

	cfg, err := NewStore(fs, testPath).Load()
	require.NoError(t, err)

	assert.True(t, cfg.Paused)
	assert.Equal(t, DefaultIntervalSeconds, cfg.IntervalSeconds)
}

func TestLoad_FullFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `notification_sound: Glass
paused: false
interval_seconds: 1500
tracking:
  enabled: true
`
	require.NoError(t, afero.WriteFile(fs, testPath, []byte(content), 0644))

	cfg, err := NewStore(fs, testPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "Glass", cfg.NotificationSound)
	assert.Equal(t, 1500, cfg.IntervalSeconds)
	assert.True(t, cfg.Tracking.Enabled)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "paused: [unterminated\n"},
		{"wrong type", "interval_seconds: soon\n"},
		{"interval too short", "interval_seconds: 5\n"},
		{"interval too long", "interval_seconds: 90000\n"},
		{"bad log level", "log_level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, testPath, []byte(tt.content), 0644))

			_, err := NewStore(fs, testPath).Load()
			assert.ErrorIs(t, err, ErrLoad)
		})
	}
}

func TestSave_RoundTripsAndCreatesDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, testPath)
	cfg := DefaultConfig()
	cfg.IntervalSeconds = 2520
	cfg.NotificationSound = "bell"
	cfg.Tracking.Enabled = true

	require.NoError(t, store.Save(cfg))

	exists, err := afero.DirExists(fs, filepath.Dir(testPath))
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := DefaultConfig()
	cfg.IntervalSeconds = 0

	err := NewStore(fs, testPath).Save(cfg)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "interval_seconds", verr.Field)
	exists, _ := afero.Exists(fs, testPath)
	assert.False(t, exists)
}

func TestValidate_JoinsAllFailures(t *testing.T) {
	cfg := &Config{IntervalSeconds: 1, LogLevel: "chatty"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.interval_seconds")
	assert.Contains(t, err.Error(), "config.log_level")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", "/home/someone")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/someone/.config/szmer/config.yaml", path)

	t.Setenv(EnvConfigPath, "/etc/szmer.yaml")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/szmer.yaml", path)
}
