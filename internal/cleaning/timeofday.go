package cleaning

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"deliverycli/internal/dataset"
)

const minutesPerDay = 24 * 60

var (
	// Excel-style day fractions such as 0.458333333, including bare
	// integers (1 is a full day and clamps to 23:59).
	fractionPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	// HH:MM:SS values get their seconds truncated.
	hhmmssPattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	// 24:xx overflows clamp to the last minute of the day.
	overflowPattern = regexp.MustCompile(`^24:\d{2}$`)
	// Canonical zero-padded 24-hour HH:MM.
	hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)
)

// StandardizeTimeColumn normalizes a free-form time-of-day column into a
// canonical HH:MM text column named <col>_clean and a parallel integer
// minutes-since-midnight column named <col>_minutes. Three encodings are
// recognized: Excel day fractions, HH:MM:SS, and 24:xx overflow times.
// Anything else that is not already canonical HH:MM becomes missing in both
// output columns. The stage is column-local and skips absent columns.
func StandardizeTimeColumn(ds *dataset.Dataset, name string) *dataset.Dataset {
	cleaned := ds.Clone()

	raw, ok := cleaned.Column(name)
	if !ok {
		return cleaned
	}

	clean := dataset.NewMissingColumn(name+cleanSuffix, dataset.Text, raw.Len())
	minutes := dataset.NewMissingColumn(name+minutesSuffix, dataset.Int, raw.Len())

	for i := 0; i < raw.Len(); i++ {
		s, ok := rawTimeString(raw, i)
		if !ok {
			continue
		}
		if hour, minute, ok := parseTimeOfDay(s); ok {
			clean.Strings[i] = fmt.Sprintf("%02d:%02d", hour, minute)
			clean.ClearMissing(i)
			minutes.Floats[i] = float64(hour*60 + minute)
			minutes.ClearMissing(i)
		}
	}

	cleaned.Add(clean)
	cleaned.Add(minutes)
	return cleaned
}

// rawTimeString renders the source cell as a trimmed string, treating NA
// literals as missing regardless of whether string tidying already ran.
func rawTimeString(c *dataset.Column, i int) (string, bool) {
	if c.IsMissing(i) {
		return "", false
	}
	var s string
	if c.IsNumeric() {
		s = strconv.FormatFloat(c.Floats[i], 'f', -1, 64)
	} else {
		s = strings.TrimSpace(c.Strings[i])
	}
	if _, na := naLiterals[s]; na {
		return "", false
	}
	return s, true
}

// parseTimeOfDay applies the three recovery encodings in order and then the
// strict HH:MM parse. It reports failure rather than erroring; callers turn
// failure into a missing marker.
func parseTimeOfDay(s string) (hour, minute int, ok bool) {
	if fractionPattern.MatchString(s) {
		fraction, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, 0, false
		}
		total := math.Round(fraction * minutesPerDay)
		// A fraction of 1.0 or more is a full day or beyond; clamp to
		// 23:59 rather than rolling over. Negative input clamps to 0.
		if total > minutesPerDay-1 {
			total = minutesPerDay - 1
		}
		if total < 0 {
			total = 0
		}
		m := int(total)
		return m / 60, m % 60, true
	}

	if hhmmssPattern.MatchString(s) {
		s = s[:5]
	}
	if overflowPattern.MatchString(s) {
		s = "23:59"
	}

	match := hhmmPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(match[1])
	minute, _ = strconv.Atoi(match[2])
	return hour, minute, true
}
