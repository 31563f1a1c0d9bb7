package cleaning

import (
	"gonum.org/v1/gonum/floats"

	"deliverycli/internal/dataset"
)

// NormalizeNumericColumns min-max scales every numeric column to [0, 1]
// using the column's own extrema, producing a separate artifact from the
// primary cleaned dataset. A constant column scales to 0.0 everywhere
// rather than dividing by zero. Missing cells stay missing.
func NormalizeNumericColumns(ds *dataset.Dataset) *dataset.Dataset {
	normalized := ds.Clone()

	for _, col := range normalized.Columns() {
		if !col.IsNumeric() {
			continue
		}
		valid := col.NonMissingFloats()
		if len(valid) == 0 {
			continue
		}
		min := floats.Min(valid)
		max := floats.Max(valid)
		col.Kind = dataset.Float
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				continue
			}
			if max == min {
				col.Floats[i] = 0.0
				continue
			}
			col.Floats[i] = (col.Floats[i] - min) / (max - min)
		}
	}

	return normalized
}
