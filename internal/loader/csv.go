package loader

import (
	"encoding/csv"
	"fmt"
	"os"

	"deliverycli/internal/dataset"
)

// LoadCSV reads a comma-delimited file with a header row into a dataset.
// An unreadable or malformed file is a fatal loader error; the pipeline
// never runs on partial input.
func LoadCSV(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	return fromRecords(records[0], records[1:])
}
