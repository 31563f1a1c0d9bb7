package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueLogSummaryOmitsZeroCounts(t *testing.T) {
	log := NewIssueLog()
	log.Record("Order_Date_parse_missing", 0)
	log.Record("outliers_capped", 12)

	stage := NewIssueLog()
	stage.Record("duplicates_removed_exact", 3)
	stage.Record("duplicates_removed_key", 0)
	log.Merge(stage)

	summary := log.Summary()
	assert.Equal(t, "Cleaning summary:\n  - outliers_capped: 12\n  - duplicates_removed_exact: 3", summary)
}

func TestIssueLogRecordAccumulates(t *testing.T) {
	log := NewIssueLog()
	log.Record("time_missing_filled", 2)
	log.Record("time_missing_filled", 3)

	assert.Equal(t, 5, log.Count("time_missing_filled"))
}

func TestIssueLogMergeDropsZeroes(t *testing.T) {
	stage := NewIssueLog()
	stage.Record("a", 0)

	log := NewIssueLog()
	log.Merge(stage)

	assert.NotContains(t, log.Counts(), "a")
}

func TestIssueLogMergeKeepsRecordedOrder(t *testing.T) {
	// The keys sort the other way around; the summary must follow the
	// order the stage recorded them in.
	stage := NewIssueLog()
	stage.Record("time_unit_conversions", 4)
	stage.Record("distance_standardised", 2)

	log := NewIssueLog()
	log.Merge(stage)

	assert.Equal(t, "Cleaning summary:\n  - time_unit_conversions: 4\n  - distance_standardised: 2", log.Summary())
}
