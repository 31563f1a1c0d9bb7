package cleaning

import (
	"golang.org/x/sync/errgroup"

	"deliverycli/internal/dataset"
)

// Domain bounds established during data profiling. These are invariants of
// the delivery domain, not tunable heuristics.
const (
	minCourierAge    = 18
	maxCourierAge    = 60
	minCourierRating = 1
	maxCourierRating = 5
)

// EnforceNumericRanges converts out-of-domain values to missing without
// clipping or dropping rows: courier age outside [18, 60], rating outside
// [1, 5], and multiple-deliveries counts other than 0-3. Absent columns are
// skipped. The three columns are independent, so their checks run
// concurrently.
func EnforceNumericRanges(ds *dataset.Dataset) *dataset.Dataset {
	cleaned := ds.Clone()

	var g errgroup.Group
	g.Go(func() error {
		invalidateOutside(cleaned, ColAge, func(v float64) bool {
			return v >= minCourierAge && v <= maxCourierAge
		})
		return nil
	})
	g.Go(func() error {
		invalidateOutside(cleaned, ColRating, func(v float64) bool {
			return v >= minCourierRating && v <= maxCourierRating
		})
		return nil
	})
	g.Go(func() error {
		invalidateOutside(cleaned, ColMultipleDeliveries, func(v float64) bool {
			return v == 0 || v == 1 || v == 2 || v == 3
		})
		return nil
	})
	_ = g.Wait() // the checks are total; no error can occur

	return cleaned
}

// invalidateOutside marks cells whose value fails the predicate as missing.
func invalidateOutside(ds *dataset.Dataset, name string, valid func(float64) bool) {
	col, ok := ds.Column(name)
	if !ok || !col.IsNumeric() {
		return
	}
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			continue
		}
		if !valid(col.Floats[i]) {
			col.SetMissing(i)
		}
	}
}
