package util

import (
	"fmt"
	"time"
)

// dateLayouts accepted from clients, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ValidateAmount checks an amount against a lower bound. Creation flows
// pass min=1, edit flows pass min=0; negative amounts are always
// rejected by the bound.
func ValidateAmount(amount, min float64) error {
	if amount < min {
		return fmt.Errorf("amount must be at least %g, got %g", min, amount)
	}
	if amount >= 10_000_000 {
		return fmt.Errorf("amount too large, got %g", amount)
	}
	return nil
}

// ParseDate parses a client-supplied transaction date.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", dateStr)
}

// ValidateLabel checks a source/category label.
func ValidateLabel(label string) error {
	if label == "" {
		return fmt.Errorf("label is empty")
	}
	if len(label) > 64 {
		return fmt.Errorf("label too long, max 64 characters")
	}
	return nil
}
