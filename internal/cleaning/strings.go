package cleaning

import (
	"strings"

	"deliverycli/internal/dataset"
)

// naLiterals are the textual forms that mean "no value" after trimming.
// Matching is exact and case-sensitive: "NAN" is a legitimate string.
var naLiterals = map[string]struct{}{
	"":     {},
	"nan":  {},
	"None": {},
}

// TidyStrings trims surrounding whitespace from every text column, converts
// empty and NA-literal cells to missing, and applies the city spelling
// remap. All other columns pass through untouched.
func TidyStrings(ds *dataset.Dataset) *dataset.Dataset {
	cleaned := ds.Clone()

	for _, col := range cleaned.Columns() {
		if !col.IsTextual() {
			continue
		}
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				continue
			}
			trimmed := strings.TrimSpace(col.Strings[i])
			if _, na := naLiterals[trimmed]; na {
				col.SetMissing(i)
				continue
			}
			col.Strings[i] = trimmed
		}
	}

	if city, ok := cleaned.Column(ColCity); ok && city.IsTextual() {
		for i := 0; i < city.Len(); i++ {
			if city.IsMissing(i) {
				continue
			}
			if fixed, ok := cityRemap[city.Strings[i]]; ok {
				city.Strings[i] = fixed
			}
		}
	}

	return cleaned
}
