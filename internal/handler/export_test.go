package handler

import (
	"reflect"
	"strings"
	"testing"

	"fintrack/internal/analytics"
)

func TestLabelHeader(t *testing.T) {
	if got := labelHeader(analytics.KindIncome); got != "Source" {
		t.Errorf("labelHeader(income) = %q, want Source", got)
	}
	if got := labelHeader(analytics.KindExpense); got != "Category" {
		t.Errorf("labelHeader(expense) = %q, want Category", got)
	}
}

func TestExportFilename(t *testing.T) {
	name := exportFilename(analytics.KindIncome, "xlsx")
	if !strings.HasPrefix(name, "Income_List_") || !strings.HasSuffix(name, ".xlsx") {
		t.Errorf("exportFilename = %q", name)
	}
}

func TestExportRow(t *testing.T) {
	r := analytics.Record{
		ID: "7", Kind: analytics.KindExpense,
		Label: "Rent", Amount: 1200, Date: "2024-01-01", Icon: "🏠",
	}
	got := exportRow(3, &r)
	want := []interface{}{3, "🏠", "Rent", 1200.0, "2024-01-01"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("exportRow = %v, want %v", got, want)
	}
}
