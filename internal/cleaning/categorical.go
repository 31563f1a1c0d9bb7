package cleaning

import (
	"deliverycli/internal/dataset"
)

// ConvertCategoricals marks the enumerated text columns as category-typed
// for downstream consumers. This is purely a type annotation; no cell value
// changes. Absent columns are skipped.
func ConvertCategoricals(ds *dataset.Dataset) *dataset.Dataset {
	cleaned := ds.Clone()
	for _, name := range categoricalColumns {
		if col, ok := cleaned.Column(name); ok && col.Kind == dataset.Text {
			col.Kind = dataset.Category
		}
	}
	return cleaned
}
