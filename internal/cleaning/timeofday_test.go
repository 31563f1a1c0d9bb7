package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardizeTimeColumn(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantClean   string
		wantMinutes float64
		wantMissing bool
	}{
		{name: "already canonical", raw: "23:45", wantClean: "23:45", wantMinutes: 1425},
		{name: "fraction near midnight", raw: "0.9993", wantClean: "23:59", wantMinutes: 1439},
		{name: "fraction noon", raw: "0.5", wantClean: "12:00", wantMinutes: 720},
		{name: "fraction of full day clamps", raw: "1.5", wantClean: "23:59", wantMinutes: 1439},
		{name: "bare integer is a full day", raw: "1", wantClean: "23:59", wantMinutes: 1439},
		{name: "fraction zero", raw: "0.0", wantClean: "00:00", wantMinutes: 0},
		{name: "seconds truncated", raw: "21:30:45", wantClean: "21:30", wantMinutes: 1290},
		{name: "overflow clamps", raw: "24:10", wantClean: "23:59", wantMinutes: 1439},
		{name: "overflow with seconds", raw: "24:05:59", wantClean: "23:59", wantMinutes: 1439},
		{name: "unpadded hour rejected", raw: "9:30", wantMissing: true},
		{name: "out of range minutes rejected", raw: "12:75", wantMissing: true},
		{name: "free text rejected", raw: "around nine", wantMissing: true},
		{name: "na literal", raw: "nan", wantMissing: true},
		{name: "whitespace only", raw: "   ", wantMissing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := newDataset(textColumn(ColTimeOrdered, []string{tt.raw}))

			out := StandardizeTimeColumn(ds, ColTimeOrdered)

			clean, ok := out.Column(ColTimeOrdered + "_clean")
			require.True(t, ok)
			minutes, ok := out.Column(ColTimeOrdered + "_minutes")
			require.True(t, ok)

			if tt.wantMissing {
				assert.True(t, clean.IsMissing(0))
				assert.True(t, minutes.IsMissing(0), "missing clean text implies missing minutes")
				return
			}
			assert.Equal(t, tt.wantClean, clean.Strings[0])
			assert.Equal(t, tt.wantMinutes, minutes.Floats[0])
		})
	}
}

func TestStandardizeTimeColumnIdempotent(t *testing.T) {
	ds := newDataset(textColumn(ColTimeOrdered, []string{"08:05", "23:59", "00:00"}))

	once := StandardizeTimeColumn(ds, ColTimeOrdered)
	clean, _ := once.Column(ColTimeOrdered + "_clean")

	// Re-running the stage on its own clean output must not change it.
	again := StandardizeTimeColumn(newDataset(textColumn(ColTimeOrdered, clean.Strings)), ColTimeOrdered)
	cleanAgain, _ := again.Column(ColTimeOrdered + "_clean")
	assert.Equal(t, clean.Strings, cleanAgain.Strings)
}

func TestStandardizeTimeColumnMissingInputStaysMissing(t *testing.T) {
	ds := newDataset(textColumn(ColTimeOrdered, []string{"10:00", ""}, 1))

	out := StandardizeTimeColumn(ds, ColTimeOrdered)

	clean, _ := out.Column(ColTimeOrdered + "_clean")
	minutes, _ := out.Column(ColTimeOrdered + "_minutes")
	assert.False(t, clean.IsMissing(0))
	assert.True(t, clean.IsMissing(1))
	assert.True(t, minutes.IsMissing(1))
}

func TestStandardizeTimeColumnAbsentColumn(t *testing.T) {
	ds := newDataset(floatColumn("x", []float64{1}))

	out := StandardizeTimeColumn(ds, ColTimeOrdered)

	assert.False(t, out.Has(ColTimeOrdered+"_clean"))
	assert.Equal(t, 1, out.Rows())
}

func TestParseTimeOfDayNegativeFractionClamps(t *testing.T) {
	// The fraction pattern rejects a leading minus, but a parsed negative
	// must still clamp at the lower bound rather than crash.
	hour, minute, ok := parseTimeOfDay("0.0000000001")
	if assert.True(t, ok) {
		assert.Equal(t, 0, hour)
		assert.Equal(t, 0, minute)
	}
}
