package cleaning

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"deliverycli/internal/dataset"
)

// Stat keys reported by FillMissingValues.
const (
	StatNumericMissingFilled     = "numeric_missing_filled"
	StatTimeMissingFilled        = "time_missing_filled"
	StatCategoricalMissingFilled = "categorical_missing_filled"
)

// FillMissingValues imputes missing cells with a strategy per column class:
// minute-denominated columns take the column median, remaining numeric
// columns the mean, and text/category columns the most frequent value.
// Time columns run first so the generic numeric pass excludes them. Columns
// with nothing missing, or nothing present to derive a fill value from, are
// left untouched and uncounted.
func FillMissingValues(ds *dataset.Dataset) (*dataset.Dataset, *IssueLog) {
	cleaned := ds.Clone()
	filled := NewIssueLog()
	filled.Record(StatNumericMissingFilled, 0)
	filled.Record(StatTimeMissingFilled, 0)
	filled.Record(StatCategoricalMissingFilled, 0)

	timeColumns := make(map[string]bool)
	for _, col := range cleaned.Columns() {
		if strings.HasSuffix(col.Name, minutesSuffix) {
			timeColumns[col.Name] = true
		}
	}
	if cleaned.Has(ColTimeTaken) {
		timeColumns[ColTimeTaken] = true
	}

	for _, col := range cleaned.Columns() {
		if !timeColumns[col.Name] {
			continue
		}
		toNumeric(col)
		filled.Record(StatTimeMissingFilled, fillNumeric(col, median))
	}

	for _, col := range cleaned.Columns() {
		if timeColumns[col.Name] || !col.IsNumeric() {
			continue
		}
		filled.Record(StatNumericMissingFilled, fillNumeric(col, func(values []float64) float64 {
			return stat.Mean(values, nil)
		}))
	}

	for _, col := range cleaned.Columns() {
		if !col.IsTextual() {
			continue
		}
		filled.Record(StatCategoricalMissingFilled, fillMode(col))
	}

	return cleaned, filled
}

// fillNumeric replaces every missing cell with fill(non-missing values) and
// returns the number of cells written. A fractional fill value promotes an
// integer column to float.
func fillNumeric(c *dataset.Column, fill func([]float64) float64) int {
	missing := c.MissingCount()
	if missing == 0 {
		return 0
	}
	valid := c.NonMissingFloats()
	if len(valid) == 0 {
		return 0
	}
	value := fill(valid)
	if c.Kind == dataset.Int && value != math.Trunc(value) {
		c.Kind = dataset.Float
	}
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			c.Floats[i] = value
			c.ClearMissing(i)
		}
	}
	return missing
}

// fillMode replaces missing text cells with the most frequent non-missing
// value, breaking frequency ties towards the lexicographically smallest
// candidate so the result is deterministic.
func fillMode(c *dataset.Column) int {
	missing := c.MissingCount()
	if missing == 0 {
		return 0
	}

	counts := make(map[string]int)
	for i := 0; i < c.Len(); i++ {
		if !c.IsMissing(i) {
			counts[c.Strings[i]]++
		}
	}
	if len(counts) == 0 {
		return 0
	}

	var mode string
	best := -1
	for value, n := range counts {
		if n > best || (n == best && value < mode) {
			mode = value
			best = n
		}
	}

	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			c.Strings[i] = mode
			c.ClearMissing(i)
		}
	}
	return missing
}
