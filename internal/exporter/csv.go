// Package exporter persists datasets as flat tabular files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"deliverycli/internal/dataset"
)

// CSVWriter writes datasets as comma-delimited files with a header row.
// Missing cells are written as empty fields.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a CSV writer. A nil logger falls back to the slog
// default.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// Write persists the dataset to path, creating intermediate directories as
// needed. An unwritable destination is fatal to the caller.
func (w *CSVWriter) Write(ds *dataset.Dataset, path string) error {
	w.logger.Info("writing dataset",
		slog.String("path", path),
		slog.Int("rows", ds.Rows()),
		slog.Int("columns", ds.NumColumns()))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(ds.Names()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	cols := ds.Columns()
	record := make([]string, len(cols))
	for i := 0; i < ds.Rows(); i++ {
		for j, col := range cols {
			record[j] = col.CellString(i)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
