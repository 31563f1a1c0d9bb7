package cleaning

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"deliverycli/internal/config"
	"deliverycli/internal/dataset"
)

// Stat keys reported by StandardizeUnits.
const (
	StatTimeUnitConversions  = "time_unit_conversions"
	StatDistanceStandardised = "distance_standardised"
)

// StandardizeUnits heuristically corrects unit-scale errors. Time columns
// whose non-missing values are overwhelmingly large multiples of 60 are
// assumed to be second-denominated and divided by 60; every time column is
// then capped at 24 hours regardless of whether a conversion fired.
// Distance columns whose maximum exceeds the metre threshold are divided by
// 1000 into kilometres. Decisions are column-global and made in a separate
// measuring pass before any mutation, so they cannot be biased by earlier
// row-level changes.
func StandardizeUnits(ds *dataset.Dataset, cfg config.CleaningConfig) (*dataset.Dataset, *IssueLog) {
	cleaned := ds.Clone()
	adjustments := NewIssueLog()
	adjustments.Record(StatTimeUnitConversions, 0)
	adjustments.Record(StatDistanceStandardised, 0)

	for _, name := range minuteDenominatedColumns {
		col, ok := cleaned.Column(name)
		if !ok {
			continue
		}
		toNumeric(col)
		nonMissing, suspects := measureSeconds(col, cfg)
		if nonMissing == 0 {
			continue
		}
		if suspects > 0 && float64(suspects)/float64(nonMissing) > cfg.SecondsShareThreshold {
			scaleColumn(col, 1.0/60.0)
			col.Kind = dataset.Float
			adjustments.Record(StatTimeUnitConversions, suspects)
		}
		capColumn(col, cfg.MaxDurationMinutes)
	}

	for _, name := range distanceColumns {
		col, ok := cleaned.Column(name)
		if !ok {
			continue
		}
		toNumeric(col)
		values := col.NonMissingFloats()
		if len(values) == 0 {
			continue
		}
		if floats.Max(values) > cfg.MetresThreshold {
			scaleColumn(col, 1.0/1000.0)
			col.Kind = dataset.Float
			adjustments.Record(StatDistanceStandardised, len(values))
		}
	}

	return cleaned, adjustments
}

// measureSeconds counts non-missing cells and those that look
// second-denominated: larger than the floor and an exact multiple of 60.
func measureSeconds(c *dataset.Column, cfg config.CleaningConfig) (nonMissing, suspects int) {
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			continue
		}
		nonMissing++
		v := c.Floats[i]
		if v > cfg.SecondsFloorMinutes && math.Mod(v, 60) == 0 {
			suspects++
		}
	}
	return nonMissing, suspects
}

func scaleColumn(c *dataset.Column, factor float64) {
	for i := 0; i < c.Len(); i++ {
		if !c.IsMissing(i) {
			c.Floats[i] *= factor
		}
	}
}

func capColumn(c *dataset.Column, upper float64) {
	for i := 0; i < c.Len(); i++ {
		if !c.IsMissing(i) && c.Floats[i] > upper {
			c.Floats[i] = upper
		}
	}
}
