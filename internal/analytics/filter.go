package analytics

import (
	"strings"
	"time"
)

// Filter is a view specification over a record list. Axes left at their
// zero value do not restrict; set axes are combined with AND.
type Filter struct {
	// SearchText matches case-insensitively as a substring of the label.
	SearchText string
	// ExactLabel, when non-nil, requires a case-sensitive label match.
	ExactLabel *string
	// Month, when non-nil, requires the record date to fall in that
	// calendar month of any year. Records whose date does not parse
	// never match a month filter.
	Month *time.Month
}

// Apply returns the records matching f, in input order. The result is
// always a fresh slice, even for the zero filter, so callers relying on
// identity-based change detection see a new value each call. The input
// is never mutated.
func Apply(records []Record, f Filter) []Record {
	out := make([]Record, 0, len(records))
	search := strings.ToLower(f.SearchText)
	for i := range records {
		r := &records[i]
		if search != "" && !strings.Contains(strings.ToLower(r.Label), search) {
			continue
		}
		if f.ExactLabel != nil && r.Label != *f.ExactLabel {
			continue
		}
		if f.Month != nil {
			t, ok := parseDate(r.Date)
			if !ok || t.Month() != *f.Month {
				continue
			}
		}
		out = append(out, *r)
	}
	return out
}
