package util

import (
	"testing"
)

func TestValidateAmount_CreateBound(t *testing.T) {
	testCases := []float64{1, 100.5, 9999999.99}

	for _, amount := range testCases {
		if err := ValidateAmount(amount, 1); err != nil {
			t.Errorf("ValidateAmount(%f, 1) error = %v, want nil", amount, err)
		}
	}

	if err := ValidateAmount(0.5, 1); err == nil {
		t.Error("ValidateAmount(0.5, 1) error = nil, want error")
	}
}

func TestValidateAmount_EditAllowsZero(t *testing.T) {
	if err := ValidateAmount(0, 0); err != nil {
		t.Errorf("ValidateAmount(0, 0) error = %v, want nil", err)
	}
}

func TestValidateAmount_Negative(t *testing.T) {
	testCases := []float64{-0.01, -100, -9999.99}

	for _, amount := range testCases {
		if err := ValidateAmount(amount, 0); err == nil {
			t.Errorf("ValidateAmount(%f, 0) error = nil, want error", amount)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	if err := ValidateAmount(100000000, 1); err == nil {
		t.Error("ValidateAmount(100000000, 1) error = nil, want error")
	}
}

func TestParseDate_Valid(t *testing.T) {
	testCases := []string{
		"2024-01-01",
		"2024-12-31T00:00:00Z",
		"2025-06-15T10:30:00",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", date, err)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"",
		"not-a-date",
		"31/12/2024",
		"2024-13-01",
	}

	for _, date := range testCases {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateLabel(t *testing.T) {
	if err := ValidateLabel("Groceries"); err != nil {
		t.Errorf("ValidateLabel(Groceries) error = %v, want nil", err)
	}
	if err := ValidateLabel(""); err == nil {
		t.Error("ValidateLabel(\"\") error = nil, want error")
	}
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'x'
	}
	if err := ValidateLabel(string(long)); err == nil {
		t.Error("ValidateLabel(65 chars) error = nil, want error")
	}
}
