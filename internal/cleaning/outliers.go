package cleaning

import (
	"math"

	"deliverycli/internal/config"
	"deliverycli/internal/dataset"
)

// StatOutliersCapped is the stat key reported by CapOutliers.
const StatOutliersCapped = "outliers_capped"

// CapOutliers clips extreme values to the Tukey fences
// [Q1 - k*IQR, Q3 + k*IQR] for the key numeric columns, counting how many
// values fell outside. Columns with a zero or undefined interquartile range
// are left untouched. Values are clipped, never removed, so the row count
// is preserved. This runs after unit standardization so that scale errors
// cannot distort the quartiles.
func CapOutliers(ds *dataset.Dataset, cfg config.CleaningConfig) (*dataset.Dataset, *IssueLog) {
	cleaned := ds.Clone()
	counts := NewIssueLog()
	counts.Record(StatOutliersCapped, 0)

	for _, name := range outlierColumns {
		col, ok := cleaned.Column(name)
		if !ok {
			continue
		}
		toNumeric(col)
		valid := col.NonMissingFloats()
		if len(valid) == 0 {
			continue
		}

		q1 := quantile(valid, 0.25)
		q3 := quantile(valid, 0.75)
		iqr := q3 - q1
		if iqr == 0 {
			continue
		}
		lower := q1 - cfg.IQRMultiplier*iqr
		upper := q3 + cfg.IQRMultiplier*iqr

		clipped := 0
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				continue
			}
			switch v := col.Floats[i]; {
			case v < lower:
				col.Floats[i] = lower
				clipped++
			case v > upper:
				col.Floats[i] = upper
				clipped++
			}
		}
		counts.Record(StatOutliersCapped, clipped)
		// Clipping an integer column to a fractional fence changes its type.
		if clipped > 0 && col.Kind == dataset.Int &&
			(lower != math.Trunc(lower) || upper != math.Trunc(upper)) {
			col.Kind = dataset.Float
		}
	}

	return cleaned, counts
}
