package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNumericColumns(t *testing.T) {
	ds := newDataset(
		floatColumn(ColTimeTaken, []float64{10, 20, 0, 30}, 2),
		intColumn(ColAge, []float64{20, 20, 20, 20}),
		textColumn(ColCity, []string{"Urban", "Urban", "Urban", "Urban"}),
	)

	out := NormalizeNumericColumns(ds)

	taken, _ := out.Column(ColTimeTaken)
	assert.Equal(t, float64(0), taken.Floats[0])
	assert.Equal(t, 0.5, taken.Floats[1])
	assert.True(t, taken.IsMissing(2), "missing cells stay missing")
	assert.Equal(t, float64(1), taken.Floats[3])

	age, _ := out.Column(ColAge)
	for i := 0; i < age.Len(); i++ {
		assert.Equal(t, float64(0), age.Floats[i], "constant column scales to zero, not NaN")
	}

	city, _ := out.Column(ColCity)
	assert.Equal(t, "Urban", city.Strings[0], "text columns are untouched")

	// The input dataset is a separate artifact and keeps its raw values.
	orig, _ := ds.Column(ColTimeTaken)
	assert.Equal(t, float64(10), orig.Floats[0])
}
