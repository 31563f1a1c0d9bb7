package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, DefaultRawDataFile, cfg.Paths.RawDataFile)
	assert.Equal(t, DefaultSecondsShareThreshold, cfg.Cleaning.SecondsShareThreshold)
	assert.Equal(t, DefaultIQRMultiplier, cfg.Cleaning.IQRMultiplier)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaner.yaml")
	content := "logging:\n  level: debug\ncleaning:\n  iqr_multiplier: 3.0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3.0, cfg.Cleaning.IQRMultiplier)
	// Untouched settings keep their defaults.
	assert.Equal(t, DefaultMetresThreshold, cfg.Cleaning.MetresThreshold)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0644))
	t.Setenv("DELIVERY_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "share above one rejected",
			env:     map[string]string{"DELIVERY_CLEANING_SECONDS_SHARE_THRESHOLD": "1.5"},
			wantErr: true,
		},
		{
			name:    "bad log level rejected",
			env:     map[string]string{"DELIVERY_LOGGING_LEVEL": "loud"},
			wantErr: true,
		},
		{
			name:    "negative multiplier rejected",
			env:     map[string]string{"DELIVERY_CLEANING_IQR_MULTIPLIER": "-1"},
			wantErr: true,
		},
		{
			name: "valid override accepted",
			env:  map[string]string{"DELIVERY_CLEANING_METRES_THRESHOLD": "2000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	p := NewPaths(PathsConfig{
		RawDataFile:  "data/raw/x.csv",
		ProcessedDir: "data/processed",
		LogsDir:      "logs",
	})

	assert.Equal(t, filepath.Join("data", "processed", DefaultCleanFileName), p.CleanOutputPath())
	assert.Equal(t, filepath.Join("data", "processed", DefaultNormalizedFileName), p.NormalizedOutputPath())
	assert.Equal(t, filepath.Join("logs", "run.log"), p.GetLogPath("run.log"))
}

func TestPathsEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := NewPaths(PathsConfig{
		RawDataFile:  filepath.Join(base, "raw.csv"),
		ProcessedDir: filepath.Join(base, "out", "processed"),
		LogsDir:      filepath.Join(base, "logs"),
	})

	require.NoError(t, p.EnsureDirectories())
	assert.DirExists(t, p.ProcessedDir)
	assert.DirExists(t, p.LogsDir)
}
