package cleaning

import (
	"time"

	"deliverycli/internal/dataset"
)

// textColumn builds a text column; missingRows marks cells missing.
func textColumn(name string, values []string, missingRows ...int) *dataset.Column {
	col := dataset.NewColumn(name, dataset.Text, len(values))
	copy(col.Strings, values)
	for _, i := range missingRows {
		col.SetMissing(i)
	}
	return col
}

// floatColumn builds a float column; missingRows marks cells missing.
func floatColumn(name string, values []float64, missingRows ...int) *dataset.Column {
	col := dataset.NewColumn(name, dataset.Float, len(values))
	copy(col.Floats, values)
	for _, i := range missingRows {
		col.SetMissing(i)
	}
	return col
}

// intColumn builds an integer column; missingRows marks cells missing.
func intColumn(name string, values []float64, missingRows ...int) *dataset.Column {
	col := floatColumn(name, values, missingRows...)
	col.Kind = dataset.Int
	return col
}

// dateColumn builds a date column; missingRows marks cells missing.
func dateColumn(name string, values []time.Time, missingRows ...int) *dataset.Column {
	col := dataset.NewColumn(name, dataset.Date, len(values))
	copy(col.Dates, values)
	for _, i := range missingRows {
		col.SetMissing(i)
	}
	return col
}

// newDataset assembles a dataset from equally sized columns.
func newDataset(cols ...*dataset.Column) *dataset.Dataset {
	ds := dataset.New(cols[0].Len())
	for _, c := range cols {
		ds.Add(c)
	}
	return ds
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
