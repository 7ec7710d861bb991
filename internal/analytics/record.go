// Package analytics holds the pure derivation core of the application:
// everything the dashboard, income and expense views show is computed
// here from plain record slices. No function in this package touches
// the database, logs, or keeps state between calls, so handlers may
// re-run them on every request against the latest snapshot.
package analytics

import "time"

// Kind discriminates income from expense records.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Record is one income or expense entry as the derivation core sees it.
// Label is the grouping key: the source of an income, the category of
// an expense. Icon is cosmetic and must round-trip untouched.
type Record struct {
	ID     string  `json:"id"`
	Kind   Kind    `json:"kind"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
	Icon   string  `json:"icon"`
}

// dateLayouts are tried in order when parsing Record.Date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// parseDate parses a record date. A record whose date does not parse is
// not an error: it simply drops out of month-bucketed computations while
// remaining visible to totals and label grouping.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
