package cleaning

import (
	"deliverycli/internal/dataset"
)

// ScrubCoordinates converts latitude/longitude values that are exactly zero
// into missing. A zero coordinate is an "unknown location" sentinel in the
// source system; genuinely small magnitudes pass through unchanged.
func ScrubCoordinates(ds *dataset.Dataset) *dataset.Dataset {
	cleaned := ds.Clone()

	for _, name := range coordinateColumns {
		col, ok := cleaned.Column(name)
		if !ok || !col.IsNumeric() {
			continue
		}
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				continue
			}
			if col.Floats[i] == 0 {
				col.SetMissing(i)
			}
		}
	}

	return cleaned
}
