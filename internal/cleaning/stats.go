package cleaning

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"deliverycli/internal/dataset"
)

// cellFloat reads the cell at row i as a number. Textual cells are parsed
// leniently; anything unparseable reads as missing.
func cellFloat(c *dataset.Column, i int) (float64, bool) {
	if c.IsMissing(i) {
		return 0, false
	}
	if c.IsNumeric() {
		return c.Floats[i], true
	}
	if !c.IsTextual() {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Strings[i]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// toNumeric converts a textual column to a float column in place, turning
// unparseable cells into missing ones. Numeric and date columns are left
// untouched.
func toNumeric(c *dataset.Column) {
	if !c.IsTextual() {
		return
	}
	n := c.Len()
	floats := make([]float64, n)
	missing := make([]bool, n)
	for i := 0; i < n; i++ {
		v, ok := cellFloat(c, i)
		floats[i] = v
		missing[i] = !ok
	}
	c.Kind = dataset.Float
	c.Strings = nil
	c.Floats = floats
	for i, m := range missing {
		if m {
			c.SetMissing(i)
		} else {
			c.ClearMissing(i)
		}
	}
}

// quantile computes the p-quantile of values with linear interpolation
// between order statistics (the "type 7" estimator). The gonum quantile
// kinds use step or CDF interpolation, which disagrees with the fence
// values this pipeline is calibrated against, so the estimator is local.
func quantile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// median returns the 0.5-quantile.
func median(values []float64) float64 {
	return quantile(values, 0.5)
}
