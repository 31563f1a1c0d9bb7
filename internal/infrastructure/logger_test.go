package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deliverycli/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "debug"},
		{in: "info"},
		{in: "warn"},
		{in: "error"},
		{in: ""},
		{in: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		_, err := parseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			assert.NoError(t, err, tt.in)
		}
	}
}

func TestCreateLoggerFileOutput(t *testing.T) {
	path := t.TempDir() + "/logs/cleaner.log"
	logger, err := createLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: path,
	})

	assert.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("hello")
	assert.FileExists(t, path)
}

func TestCreateLoggerRejectsUnknownOutput(t *testing.T) {
	_, err := createLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "syslog"})
	assert.Error(t, err)
}
