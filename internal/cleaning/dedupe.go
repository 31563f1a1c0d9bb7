package cleaning

import (
	"sort"
	"strings"

	"deliverycli/internal/dataset"
)

// Stat keys reported by RemoveDuplicates.
const (
	StatDuplicatesRemovedExact = "duplicates_removed_exact"
	StatDuplicatesRemovedKey   = "duplicates_removed_key"
)

// Cell-key sentinels. Missing compares equal to missing and never collides
// with a real value.
const (
	missingCellKey = "\x00"
	cellKeySep     = "\x1f"
)

// RemoveDuplicates resolves duplicate records in two phases. First, rows
// that are identical across every column collapse to their first
// occurrence. Second, when at least two of the natural-key columns (order
// id, courier id, parsed order date) are present, rows are sorted by the
// available chronological columns and later rows sharing the same key are
// dropped, so the surviving row is the earliest record. The row index is
// contiguous afterwards.
func RemoveDuplicates(ds *dataset.Dataset) (*dataset.Dataset, *IssueLog) {
	cleaned := ds.Clone()
	stats := NewIssueLog()

	before := cleaned.Rows()
	cleaned = dropDuplicateRows(cleaned, cleaned.Columns())
	stats.Record(StatDuplicatesRemovedExact, before-cleaned.Rows())
	stats.Record(StatDuplicatesRemovedKey, 0)

	if len(naturalKeyColumns(cleaned)) >= 2 {
		cleaned = sortChronologically(cleaned)
		// The sort built a new dataset; the key columns must be looked up
		// again so the keys line up with the sorted rows.
		before = cleaned.Rows()
		cleaned = dropDuplicateRows(cleaned, naturalKeyColumns(cleaned))
		stats.Record(StatDuplicatesRemovedKey, before-cleaned.Rows())
	}

	return cleaned, stats
}

// naturalKeyColumns collects the business-key columns present in the
// dataset: the primary order id (falling back to the generic id), the
// courier id, and the parsed order date.
func naturalKeyColumns(ds *dataset.Dataset) []*dataset.Column {
	var cols []*dataset.Column
	if col, ok := ds.Column(ColOrderID); ok {
		cols = append(cols, col)
	} else if col, ok := ds.Column(ColID); ok {
		cols = append(cols, col)
	}
	for _, name := range []string{ColCourierID, ColOrderDateClean} {
		if col, ok := ds.Column(name); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

// dropDuplicateRows keeps the first row for every distinct key over the
// given columns, preserving row order.
func dropDuplicateRows(ds *dataset.Dataset, keyCols []*dataset.Column) *dataset.Dataset {
	seen := make(map[string]bool, ds.Rows())
	keep := make([]int, 0, ds.Rows())
	var sb strings.Builder
	for i := 0; i < ds.Rows(); i++ {
		sb.Reset()
		for _, c := range keyCols {
			if c.IsMissing(i) {
				sb.WriteString(missingCellKey)
			} else {
				sb.WriteString(c.CellString(i))
			}
			sb.WriteString(cellKeySep)
		}
		key := sb.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}
	if len(keep) == ds.Rows() {
		return ds
	}
	return ds.Take(keep)
}

// sortChronologically stable-sorts rows by the available chronological
// columns (parsed date, then order minutes, then pickup minutes) so that
// "first occurrence" is the earliest record. Missing values sort last
// within each column comparison. Without any chronological column the
// dataset passes through unchanged.
func sortChronologically(ds *dataset.Dataset) *dataset.Dataset {
	var sortCols []*dataset.Column
	for _, name := range []string{ColOrderDateClean, ColTimeOrdered + minutesSuffix, ColTimePicked + minutesSuffix} {
		if col, ok := ds.Column(name); ok {
			sortCols = append(sortCols, col)
		}
	}
	if len(sortCols) == 0 {
		return ds
	}

	indices := make([]int, ds.Rows())
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		for _, c := range sortCols {
			if cmp := compareCells(c, indices[a], indices[b]); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})
	return ds.Take(indices)
}

// compareCells orders two cells of one column, placing missing cells after
// present ones.
func compareCells(c *dataset.Column, a, b int) int {
	am, bm := c.IsMissing(a), c.IsMissing(b)
	switch {
	case am && bm:
		return 0
	case am:
		return 1
	case bm:
		return -1
	}
	switch c.Kind {
	case dataset.Date:
		if c.Dates[a].Before(c.Dates[b]) {
			return -1
		}
		if c.Dates[a].After(c.Dates[b]) {
			return 1
		}
		return 0
	case dataset.Int, dataset.Float:
		switch {
		case c.Floats[a] < c.Floats[b]:
			return -1
		case c.Floats[a] > c.Floats[b]:
			return 1
		}
		return 0
	default:
		return strings.Compare(c.Strings[a], c.Strings[b])
	}
}
