// Package dataset provides the in-memory tabular model the cleaning
// pipeline operates on: an ordered collection of named, typed columns of
// equal length with a per-cell missing marker that is distinct from zero
// and from the empty string.
package dataset

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the semantic type of a column.
type Kind int

const (
	Text Kind = iota
	Int
	Float
	Date
	Category
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Int:
		return "int"
	case Float:
		return "float"
	case Date:
		return "date"
	case Category:
		return "category"
	default:
		return "unknown"
	}
}

// Column is a named, typed sequence of values. Exactly one of the backing
// slices is populated depending on Kind: Strings for Text and Category,
// Floats for Int and Float (integers are stored as float64 so that range
// checks and imputation never need a separate code path), Dates for Date.
// The missing slice always has the same length as the backing slice.
type Column struct {
	Name    string
	Kind    Kind
	Strings []string
	Floats  []float64
	Dates   []time.Time
	missing []bool
}

// NewColumn allocates an all-present column of n cells for the given kind.
func NewColumn(name string, kind Kind, n int) *Column {
	c := &Column{Name: name, Kind: kind, missing: make([]bool, n)}
	switch kind {
	case Text, Category:
		c.Strings = make([]string, n)
	case Int, Float:
		c.Floats = make([]float64, n)
	case Date:
		c.Dates = make([]time.Time, n)
	}
	return c
}

// NewMissingColumn allocates an all-missing column of n cells.
func NewMissingColumn(name string, kind Kind, n int) *Column {
	c := NewColumn(name, kind, n)
	for i := range c.missing {
		c.missing[i] = true
	}
	return c
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.missing)
}

// IsMissing reports whether the cell at row i carries the missing marker.
func (c *Column) IsMissing(i int) bool {
	return c.missing[i]
}

// SetMissing marks the cell at row i as missing and zeroes its value so
// stale data cannot leak through the backing slice.
func (c *Column) SetMissing(i int) {
	c.missing[i] = true
	switch c.Kind {
	case Text, Category:
		c.Strings[i] = ""
	case Int, Float:
		c.Floats[i] = 0
	case Date:
		c.Dates[i] = time.Time{}
	}
}

// ClearMissing marks the cell at row i as present. The caller is expected
// to have written a value to the backing slice.
func (c *Column) ClearMissing(i int) {
	c.missing[i] = false
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.missing {
		if m {
			n++
		}
	}
	return n
}

// IsNumeric reports whether the column stores numbers.
func (c *Column) IsNumeric() bool {
	return c.Kind == Int || c.Kind == Float
}

// IsTextual reports whether the column stores strings.
func (c *Column) IsTextual() bool {
	return c.Kind == Text || c.Kind == Category
}

// NonMissingFloats returns the values of all present cells of a numeric
// column, in row order. The returned slice is freshly allocated.
func (c *Column) NonMissingFloats() []float64 {
	out := make([]float64, 0, c.Len())
	for i, m := range c.missing {
		if !m {
			out = append(out, c.Floats[i])
		}
	}
	return out
}

// CellString formats the cell at row i for flat-file output. Missing cells
// render as the empty string, dates as YYYY-MM-DD, and numbers with the
// shortest representation that round-trips.
func (c *Column) CellString(i int) string {
	if c.missing[i] {
		return ""
	}
	switch c.Kind {
	case Text, Category:
		return c.Strings[i]
	case Int:
		return strconv.FormatInt(int64(c.Floats[i]), 10)
	case Float:
		return strconv.FormatFloat(c.Floats[i], 'f', -1, 64)
	case Date:
		return c.Dates[i].Format("2006-01-02")
	}
	return ""
}

// clone returns a deep copy of the column.
func (c *Column) clone() *Column {
	dup := &Column{Name: c.Name, Kind: c.Kind}
	dup.missing = append([]bool(nil), c.missing...)
	if c.Strings != nil {
		dup.Strings = append([]string(nil), c.Strings...)
	}
	if c.Floats != nil {
		dup.Floats = append([]float64(nil), c.Floats...)
	}
	if c.Dates != nil {
		dup.Dates = append([]time.Time(nil), c.Dates...)
	}
	return dup
}

// take returns a new column holding the cells at the given row indices,
// in the given order.
func (c *Column) take(indices []int) *Column {
	dup := NewColumn(c.Name, c.Kind, len(indices))
	for out, i := range indices {
		dup.missing[out] = c.missing[i]
		switch c.Kind {
		case Text, Category:
			dup.Strings[out] = c.Strings[i]
		case Int, Float:
			dup.Floats[out] = c.Floats[i]
		case Date:
			dup.Dates[out] = c.Dates[i]
		}
	}
	return dup
}

// Dataset is an ordered collection of equally sized columns addressable by
// name. Stages treat datasets as copy-on-write: Clone before mutating.
type Dataset struct {
	cols  []*Column
	index map[string]int
	rows  int
}

// New creates an empty dataset that will accept columns of the given length.
func New(rows int) *Dataset {
	return &Dataset{index: make(map[string]int), rows: rows}
}

// Rows returns the number of rows.
func (d *Dataset) Rows() int {
	return d.rows
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.cols)
}

// Names returns the column names in insertion order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in insertion order. The slice is shared;
// callers must not reorder it.
func (d *Dataset) Columns() []*Column {
	return d.cols
}

// Column looks up a column by name. The second return value reports whether
// the column exists, so absent columns can be skipped without an error.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.cols[i], true
}

// Has reports whether every named column exists.
func (d *Dataset) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := d.index[name]; !ok {
			return false
		}
	}
	return true
}

// Add appends a column, replacing any existing column with the same name
// in place. The column length must match the dataset row count; a mismatch
// is a programming error and panics.
func (d *Dataset) Add(col *Column) {
	if col.Len() != d.rows {
		panic(fmt.Sprintf("dataset: column %q has %d cells, dataset has %d rows", col.Name, col.Len(), d.rows))
	}
	if i, ok := d.index[col.Name]; ok {
		d.cols[i] = col
		return
	}
	d.index[col.Name] = len(d.cols)
	d.cols = append(d.cols, col)
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (d *Dataset) Clone() *Dataset {
	dup := New(d.rows)
	for _, c := range d.cols {
		dup.Add(c.clone())
	}
	return dup
}

// Take returns a new dataset holding the rows at the given indices, in the
// given order. Indices may repeat or omit rows; the result is reindexed to
// a contiguous sequence.
func (d *Dataset) Take(indices []int) *Dataset {
	dup := New(len(indices))
	for _, c := range d.cols {
		dup.Add(c.take(indices))
	}
	return dup
}
