package cleaning

import (
	"regexp"
	"strings"
	"time"

	"deliverycli/internal/dataset"
)

// ddmmyyyyPattern pins the exact zero-padded shape; time.Parse alone would
// accept single-digit days and months.
var ddmmyyyyPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// ParseOrderDates parses the Order_Date column with strict DD-MM-YYYY
// matching into a new Order_Date_clean date column. Values that do not
// match the format exactly, or name an impossible calendar date, become
// missing. The original column is left untouched.
func ParseOrderDates(ds *dataset.Dataset) *dataset.Dataset {
	cleaned := ds.Clone()

	raw, ok := cleaned.Column(ColOrderDate)
	if !ok || !raw.IsTextual() {
		return cleaned
	}

	parsed := dataset.NewMissingColumn(ColOrderDateClean, dataset.Date, raw.Len())
	for i := 0; i < raw.Len(); i++ {
		if raw.IsMissing(i) {
			continue
		}
		s := strings.TrimSpace(raw.Strings[i])
		if !ddmmyyyyPattern.MatchString(s) {
			continue
		}
		t, err := time.Parse("02-01-2006", s)
		if err != nil {
			continue
		}
		parsed.Dates[i] = t
		parsed.ClearMissing(i)
	}

	cleaned.Add(parsed)
	return cleaned
}
