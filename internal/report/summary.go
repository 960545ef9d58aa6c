package report

import (
	"sort"
	"time"
)

// Summary describes one stream run for auditing.
type Summary struct {
	// SessionID uniquely identifies the run across log files and reports.
	SessionID string

	// Tables are the tables that were streamed, in the order requested.
	Tables []string

	// Rows is the total number of rows streamed.
	Rows int

	// Redactions maps field name to the number of values redacted for it.
	Redactions map[string]int

	// StartedAt is when the run began.
	StartedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// TotalRedactions returns the number of redacted values across all fields.
func (s *Summary) TotalRedactions() int {
	total := 0
	for _, n := range s.Redactions {
		total += n
	}
	return total
}

// SortedFields returns the redacted field names in lexical order.
// Map iteration order would make report output non-deterministic.
func (s *Summary) SortedFields() []string {
	fields := make([]string, 0, len(s.Redactions))
	for field := range s.Redactions {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
