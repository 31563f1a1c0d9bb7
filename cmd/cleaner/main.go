// Command cleaner runs the delivery-dataset cleaning pipeline: it loads the
// raw export, applies the ordered stage sequence, writes the cleaned and
// min-max normalized datasets, and prints a quality summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"deliverycli/internal/cleaning"
	"deliverycli/internal/config"
	"deliverycli/internal/exporter"
	"deliverycli/internal/infrastructure"
	"deliverycli/internal/loader"
)

func main() {
	inPath := flag.String("in", "", "raw dataset file, .csv or .xlsx (defaults to the configured raw data path)")
	outPath := flag.String("out", "", "destination for the cleaned dataset (defaults under the configured processed dir)")
	normalizedPath := flag.String("normalized", "", "destination for the normalized dataset (defaults under the configured processed dir)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	ctx := context.Background()
	shutdownTracing, err := infrastructure.InitTracing(ctx, cfg.Tracing.Enabled)
	if err != nil {
		logger.Warn("Failed to initialize tracing", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer func() {
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("Trace shutdown failed", "error", err)
		}
	}()

	paths := config.NewPaths(cfg.Paths)
	if *inPath == "" {
		*inPath = paths.RawDataFile
	}
	if *outPath == "" {
		*outPath = paths.CleanOutputPath()
	}
	if *normalizedPath == "" {
		*normalizedPath = paths.NormalizedOutputPath()
	}

	logger.Info("starting delivery dataset cleaning",
		slog.String("input", *inPath),
		slog.String("output", *outPath),
		slog.String("normalized_output", *normalizedPath))

	raw, err := loader.Load(*inPath)
	if err != nil {
		logger.Error("Failed to load raw dataset", "error", err)
		os.Exit(1)
	}
	logger.Info("raw dataset loaded",
		slog.Int("rows", raw.Rows()),
		slog.Int("columns", raw.NumColumns()))

	pipeline := cleaning.New(logger, cfg.Cleaning)
	result := pipeline.Clean(ctx, raw)

	writer := exporter.NewCSVWriter(logger)
	if err := writer.Write(result.Cleaned, *outPath); err != nil {
		logger.Error("Failed to write cleaned dataset", "error", err)
		os.Exit(1)
	}
	if err := writer.Write(result.Normalized, *normalizedPath); err != nil {
		logger.Error("Failed to write normalized dataset", "error", err)
		os.Exit(1)
	}

	fmt.Println(result.Issues.Summary())
	fmt.Printf("Processed dataset saved to %s\n", *outPath)
	fmt.Printf("Normalized dataset saved to %s\n", *normalizedPath)
}
