package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths resolves the canonical file locations used by the cleaner.
type Paths struct {
	RawDataFile  string
	ProcessedDir string
	LogsDir      string
}

// NewPaths builds a Paths from configuration.
func NewPaths(cfg PathsConfig) *Paths {
	return &Paths{
		RawDataFile:  cfg.RawDataFile,
		ProcessedDir: cfg.ProcessedDir,
		LogsDir:      cfg.LogsDir,
	}
}

// CleanOutputPath returns the destination for the primary cleaned dataset.
func (p *Paths) CleanOutputPath() string {
	return filepath.Join(p.ProcessedDir, DefaultCleanFileName)
}

// NormalizedOutputPath returns the destination for the min-max normalized
// companion dataset.
func (p *Paths) NormalizedOutputPath() string {
	return filepath.Join(p.ProcessedDir, DefaultNormalizedFileName)
}

// GetLogPath returns the path of a log file inside the logs directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// EnsureDirectories creates the output and log directories if needed.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ProcessedDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
