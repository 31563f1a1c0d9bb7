// Package loader reads raw delivery datasets from flat files into the
// in-memory dataset model. It applies no semantic coercion beyond column
// type inference; the cleaning pipeline owns every correction.
package loader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"deliverycli/internal/dataset"
)

// naValues mirrors the missing markers commonly emitted by spreadsheet
// exports. Matching happens on the trimmed cell; "nan " with inner casing
// quirks is left for the string tidying stage.
var naValues = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"null": {},
	"NaN":  {},
	"nan":  {},
}

var integerPattern = regexp.MustCompile(`^[+-]?\d+$`)

// Load reads the file at path, dispatching on the extension: .xlsx and .xls
// open as Excel workbooks, everything else as CSV.
func Load(path string) (*dataset.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return LoadExcel(path)
	default:
		return LoadCSV(path)
	}
}

// fromRecords builds a typed dataset from a header row and string cells.
// A column whose non-missing cells all parse as numbers becomes numeric
// (integer when every cell is integral); everything else stays text.
func fromRecords(header []string, rows [][]string) (*dataset.Dataset, error) {
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
	}

	ds := dataset.New(len(rows))
	for colIdx, name := range header {
		cells := make([]string, len(rows))
		missing := make([]bool, len(rows))
		allInt := true
		allFloat := true
		present := 0
		for rowIdx, row := range rows {
			cell := strings.TrimSpace(row[colIdx])
			if _, na := naValues[cell]; na {
				missing[rowIdx] = true
				continue
			}
			cells[rowIdx] = cell
			present++
			if !integerPattern.MatchString(cell) {
				allInt = false
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				allFloat = false
			}
		}

		var col *dataset.Column
		switch {
		case present > 0 && allFloat:
			kind := dataset.Float
			if allInt {
				kind = dataset.Int
			}
			col = dataset.NewColumn(name, kind, len(rows))
			for i := range rows {
				if missing[i] {
					col.SetMissing(i)
					continue
				}
				v, _ := strconv.ParseFloat(cells[i], 64)
				col.Floats[i] = v
			}
		default:
			col = dataset.NewColumn(name, dataset.Text, len(rows))
			for i, row := range rows {
				if missing[i] {
					col.SetMissing(i)
					continue
				}
				// Keep the raw cell so the tidying stage sees the
				// original whitespace-bearing value.
				col.Strings[i] = row[colIdx]
			}
		}
		ds.Add(col)
	}
	return ds, nil
}
