package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deliverycli/internal/config"
)

func TestCapOutliers(t *testing.T) {
	cfg := config.Default().Cleaning

	t.Run("tukey fence clips the outlier", func(t *testing.T) {
		ds := newDataset(floatColumn(ColTimeTaken, []float64{1, 2, 3, 4, 100}))

		out, stats := CapOutliers(ds, cfg)

		// Q1=2, Q3=4, IQR=2, upper fence = 4 + 1.5*2 = 7.
		col, _ := out.Column(ColTimeTaken)
		assert.Equal(t, []float64{1, 2, 3, 4, 7}, col.Floats)
		assert.Equal(t, 1, stats.Count(StatOutliersCapped))
	})

	t.Run("lower fence clips too", func(t *testing.T) {
		ds := newDataset(floatColumn(ColAge, []float64{-100, 20, 21, 22, 23}))

		out, stats := CapOutliers(ds, cfg)

		col, _ := out.Column(ColAge)
		// Q1=20, Q3=22, IQR=2, lower fence = 20 - 3 = 17.
		assert.Equal(t, float64(17), col.Floats[0])
		assert.Equal(t, 1, stats.Count(StatOutliersCapped))
	})

	t.Run("zero IQR leaves column untouched", func(t *testing.T) {
		ds := newDataset(floatColumn(ColRating, []float64{4, 4, 4, 4, 100}))

		out, stats := CapOutliers(ds, cfg)

		col, _ := out.Column(ColRating)
		assert.Equal(t, float64(100), col.Floats[4])
		assert.Equal(t, 0, stats.Count(StatOutliersCapped))
	})

	t.Run("missing values are excluded from the quartiles", func(t *testing.T) {
		ds := newDataset(floatColumn(ColTimeTaken, []float64{0, 1, 2, 3, 4, 100}, 0))

		out, stats := CapOutliers(ds, cfg)

		col, _ := out.Column(ColTimeTaken)
		assert.True(t, col.IsMissing(0))
		assert.Equal(t, float64(7), col.Floats[5])
		assert.Equal(t, 1, stats.Count(StatOutliersCapped))
	})

	t.Run("columns outside the fixed set pass through", func(t *testing.T) {
		ds := newDataset(floatColumn("Restaurant_latitude", []float64{1, 2, 3, 4, 100}))

		out, stats := CapOutliers(ds, cfg)

		col, _ := out.Column("Restaurant_latitude")
		assert.Equal(t, float64(100), col.Floats[4])
		assert.Equal(t, 0, stats.Count(StatOutliersCapped))
	})
}

func TestQuantileLinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 100}
	assert.Equal(t, float64(2), quantile(values, 0.25))
	assert.Equal(t, float64(3), quantile(values, 0.5))
	assert.Equal(t, float64(4), quantile(values, 0.75))

	even := []float64{1, 2, 3, 4}
	assert.Equal(t, 2.5, median(even))
	assert.Equal(t, 1.75, quantile(even, 0.25))
}
