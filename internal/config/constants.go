package config

// Application constants for the delivery dataset cleaner.
const (
	AppName    = "Delivery Cleaner"
	AppVersion = "1.0.0"

	// Environment prefix for configuration overrides
	EnvPrefix = "DELIVERY"

	// File Paths (relative to the working directory)
	DefaultRawDataFile        = "data/raw/zomato_dataset.csv"
	DefaultProcessedDir       = "data/processed"
	DefaultCleanFileName      = "zomato_deliveries_clean.csv"
	DefaultNormalizedFileName = "zomato_deliveries_normalized.csv"
	DefaultLogsDir            = "logs"
	DefaultConfigFileName     = "cleaner.yaml"

	// Unit-standardization heuristics. A time column is assumed to be in
	// seconds when more than SecondsShareThreshold of its non-missing
	// values exceed SecondsFloorMinutes and are exact multiples of 60.
	DefaultSecondsShareThreshold = 0.8
	DefaultSecondsFloorMinutes   = 180.0
	DefaultMaxDurationMinutes    = 1440.0
	DefaultMetresThreshold       = 1000.0

	// Tukey fence multiplier for outlier capping
	DefaultIQRMultiplier = 1.5
)
