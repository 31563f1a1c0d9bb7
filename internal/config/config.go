package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TracingConfig controls the optional per-stage trace spans.
type TracingConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	RawDataFile  string `yaml:"raw_data_file" envconfig:"RAW_DATA_FILE" validate:"required"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" validate:"required"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR" validate:"required"`
}

// CleaningConfig carries the tunable heuristics of the cleaning pipeline.
// The defaults reproduce the thresholds established during data profiling;
// they are configuration, not invariants.
type CleaningConfig struct {
	// SecondsShareThreshold is the fraction of non-missing values that must
	// look second-denominated before a whole time column is divided by 60.
	SecondsShareThreshold float64 `yaml:"seconds_share_threshold" envconfig:"SECONDS_SHARE_THRESHOLD" validate:"gt=0,lte=1"`
	// SecondsFloorMinutes is the magnitude a value must exceed to count as
	// second-denominated.
	SecondsFloorMinutes float64 `yaml:"seconds_floor_minutes" envconfig:"SECONDS_FLOOR_MINUTES" validate:"gte=0"`
	// MaxDurationMinutes caps every time column after unit correction.
	MaxDurationMinutes float64 `yaml:"max_duration_minutes" envconfig:"MAX_DURATION_MINUTES" validate:"gt=0"`
	// MetresThreshold is the column maximum beyond which a distance column
	// is assumed to be metre-denominated and divided by 1000.
	MetresThreshold float64 `yaml:"metres_threshold" envconfig:"METRES_THRESHOLD" validate:"gt=0"`
	// IQRMultiplier widens the interquartile range into the Tukey fences.
	IQRMultiplier float64 `yaml:"iqr_multiplier" envconfig:"IQR_MULTIPLIER" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogsDir + "/cleaner.log",
		},
		Paths: PathsConfig{
			RawDataFile:  DefaultRawDataFile,
			ProcessedDir: DefaultProcessedDir,
			LogsDir:      DefaultLogsDir,
		},
		Cleaning: CleaningConfig{
			SecondsShareThreshold: DefaultSecondsShareThreshold,
			SecondsFloorMinutes:   DefaultSecondsFloorMinutes,
			MaxDurationMinutes:    DefaultMaxDurationMinutes,
			MetresThreshold:       DefaultMetresThreshold,
			IQRMultiplier:         DefaultIQRMultiplier,
		},
	}
}

// Load builds the configuration in precedence order: built-in defaults,
// then the YAML file at configFile (skipped when empty or absent), then
// environment variables with the DELIVERY prefix.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFileName); err == nil {
			configFile = DefaultConfigFileName
		}
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate checks the configuration for invalid combinations.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}
