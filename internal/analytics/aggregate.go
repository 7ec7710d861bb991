package analytics

import (
	"sort"
	"time"
)

// monthNames is the fixed bucket order for monthly series.
var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthBucket is one point of a monthly series.
type MonthBucket struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// LabelSum is one slice of a label distribution. Icon is taken from the
// first record seen for that label.
type LabelSum struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Icon   string  `json:"icon"`
}

// TotalAmount sums the amount of every record. Empty input yields 0.
func TotalAmount(records []Record) float64 {
	var sum float64
	for i := range records {
		sum += records[i].Amount
	}
	return sum
}

// CurrentMonthTotal sums records whose date falls in the same calendar
// month and year as ref. The reference date is an explicit parameter so
// the result never depends on the wall clock. Records with unparseable
// dates are skipped.
func CurrentMonthTotal(records []Record, ref time.Time) float64 {
	var sum float64
	for i := range records {
		t, ok := parseDate(records[i].Date)
		if !ok {
			continue
		}
		if t.Month() == ref.Month() && t.Year() == ref.Year() {
			sum += records[i].Amount
		}
	}
	return sum
}

// MonthlySeries buckets records into the twelve calendar months,
// Jan..Dec, summing across years. Every month is present, empty ones
// with value 0, so two series rendered side by side stay aligned.
// Records with unparseable dates are skipped.
func MonthlySeries(records []Record) []MonthBucket {
	series := make([]MonthBucket, 12)
	for i := range series {
		series[i].Month = monthNames[i]
	}
	for i := range records {
		t, ok := parseDate(records[i].Date)
		if !ok {
			continue
		}
		series[int(t.Month())-1].Value += records[i].Amount
	}
	return series
}

// SparseMonthlySeries is MonthlySeries with zero months removed. The
// result keeps Jan..Dec order, not insertion order. Used for
// single-series charts where empty months are just noise.
func SparseMonthlySeries(records []Record) []MonthBucket {
	dense := MonthlySeries(records)
	sparse := make([]MonthBucket, 0, len(dense))
	for _, b := range dense {
		if b.Value != 0 {
			sparse = append(sparse, b)
		}
	}
	return sparse
}

// LabelDistribution groups records by label (case-sensitive), summing
// amounts. Output order is first appearance in the input; the icon of a
// group is the icon of its first record. Empty input yields an empty,
// non-nil slice.
func LabelDistribution(records []Record) []LabelSum {
	index := make(map[string]int, len(records))
	out := make([]LabelSum, 0, len(records))
	for i := range records {
		r := &records[i]
		if j, ok := index[r.Label]; ok {
			out[j].Amount += r.Amount
			continue
		}
		index[r.Label] = len(out)
		out = append(out, LabelSum{Label: r.Label, Amount: r.Amount, Icon: r.Icon})
	}
	return out
}

// RecentTransactions merges income and expense records into a single
// feed sorted newest first and truncated to limit. The sort is stable:
// records sharing a date keep their relative input order (incomes
// before expenses). Records with unparseable dates sort last.
func RecentTransactions(incomes, expenses []Record, limit int) []Record {
	merged := make([]Record, 0, len(incomes)+len(expenses))
	merged = append(merged, incomes...)
	merged = append(merged, expenses...)

	sort.SliceStable(merged, func(i, j int) bool {
		ti, _ := parseDate(merged[i].Date)
		tj, _ := parseDate(merged[j].Date)
		return ti.After(tj)
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
