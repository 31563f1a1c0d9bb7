package cleaning

import (
	"fmt"
	"strings"
)

// IssueLog accumulates stage diagnostics as named non-negative counts in
// first-recorded order.
type IssueLog struct {
	order  []string
	counts map[string]int
}

// NewIssueLog returns an empty issue log.
func NewIssueLog() *IssueLog {
	return &IssueLog{counts: make(map[string]int)}
}

// Record stores a count under key, adding to any existing count. Zero
// counts are stored too; the summary renderer filters them.
func (l *IssueLog) Record(key string, count int) {
	if _, ok := l.counts[key]; !ok {
		l.order = append(l.order, key)
	}
	l.counts[key] += count
}

// Merge folds another log into this one in that log's recorded order, so a
// stage's keys keep their declaration order in the summary. Zero entries
// are dropped.
func (l *IssueLog) Merge(stats *IssueLog) {
	for _, k := range stats.order {
		if stats.counts[k] != 0 {
			l.Record(k, stats.counts[k])
		}
	}
}

// Count returns the count recorded under key, or zero.
func (l *IssueLog) Count(key string) int {
	return l.counts[key]
}

// Counts returns a copy of the accumulated counts.
func (l *IssueLog) Counts() map[string]int {
	out := make(map[string]int, len(l.counts))
	for k, v := range l.counts {
		out[k] = v
	}
	return out
}

// Summary renders the log as a human-readable block, one line per key in
// recorded order, omitting zero-valued keys.
func (l *IssueLog) Summary() string {
	var sb strings.Builder
	sb.WriteString("Cleaning summary:")
	for _, key := range l.order {
		if l.counts[key] == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n  - %s: %d", key, l.counts[key]))
	}
	return sb.String()
}
