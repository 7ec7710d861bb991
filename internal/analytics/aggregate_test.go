package analytics

import (
	"reflect"
	"testing"
	"time"
)

func expenseRecords() []Record {
	return []Record{
		{ID: "e1", Kind: KindExpense, Label: "Rent", Amount: 1200, Date: "2024-01-01", Icon: "🏠"},
		{ID: "e2", Kind: KindExpense, Label: "Food", Amount: 300, Date: "2024-02-10", Icon: "🍔"},
	}
}

func TestTotalAmount_Empty(t *testing.T) {
	if got := TotalAmount(nil); got != 0 {
		t.Errorf("TotalAmount(nil) = %v, want 0", got)
	}
	if got := TotalAmount([]Record{}); got != 0 {
		t.Errorf("TotalAmount([]) = %v, want 0", got)
	}
}

func TestTotalAmount_Sums(t *testing.T) {
	if got := TotalAmount(expenseRecords()); got != 1500 {
		t.Errorf("TotalAmount = %v, want 1500", got)
	}
}

func TestTotalAmount_IncludesUnparseableDates(t *testing.T) {
	records := []Record{
		{Label: "Food", Amount: 10, Date: "not-a-date"},
		{Label: "Gas", Amount: 5, Date: "2024-03-01"},
	}
	if got := TotalAmount(records); got != 15 {
		t.Errorf("TotalAmount = %v, want 15", got)
	}
}

func TestCurrentMonthTotal_MonthAndYearMustMatch(t *testing.T) {
	records := []Record{
		{Amount: 100, Date: "2024-01-15"},
		{Amount: 50, Date: "2023-01-15"}, // same month, other year
		{Amount: 25, Date: "2024-02-15"},
	}
	ref := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	if got := CurrentMonthTotal(records, ref); got != 100 {
		t.Errorf("CurrentMonthTotal = %v, want 100", got)
	}
}

func TestCurrentMonthTotal_Boundary(t *testing.T) {
	records := []Record{
		{Amount: 10, Date: "2024-01-31"},
		{Amount: 20, Date: "2024-02-01"},
	}
	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := CurrentMonthTotal(records, jan); got != 10 {
		t.Errorf("CurrentMonthTotal(jan) = %v, want 10", got)
	}
	feb := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	if got := CurrentMonthTotal(records, feb); got != 20 {
		t.Errorf("CurrentMonthTotal(feb) = %v, want 20", got)
	}
}

func TestCurrentMonthTotal_SkipsUnparseable(t *testing.T) {
	records := []Record{
		{Amount: 10, Date: "not-a-date"},
		{Amount: 20, Date: "2024-01-05"},
	}
	ref := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := CurrentMonthTotal(records, ref); got != 20 {
		t.Errorf("CurrentMonthTotal = %v, want 20", got)
	}
}

func TestMonthlySeries_AlwaysTwelveBuckets(t *testing.T) {
	for _, records := range [][]Record{nil, expenseRecords()} {
		series := MonthlySeries(records)
		if len(series) != 12 {
			t.Fatalf("len(MonthlySeries) = %d, want 12", len(series))
		}
		for i, b := range series {
			if b.Month != monthNames[i] {
				t.Errorf("series[%d].Month = %q, want %q", i, b.Month, monthNames[i])
			}
		}
	}
}

func TestMonthlySeries_SumsAcrossYears(t *testing.T) {
	records := []Record{
		{Amount: 10, Date: "2023-03-01"},
		{Amount: 5, Date: "2024-03-20"},
	}
	series := MonthlySeries(records)
	if series[2].Value != 15 {
		t.Errorf("Mar = %v, want 15", series[2].Value)
	}
}

func TestMonthlySeries_SkipsUnparseable(t *testing.T) {
	records := []Record{{Amount: 10, Date: "not-a-date"}}
	for _, b := range MonthlySeries(records) {
		if b.Value != 0 {
			t.Errorf("%s = %v, want 0", b.Month, b.Value)
		}
	}
}

func TestSparseMonthlySeries_OrderAndContents(t *testing.T) {
	records := []Record{
		{Amount: 5, Date: "2024-11-02"}, // inserted out of month order
		{Amount: 10, Date: "2024-02-01"},
	}
	want := []MonthBucket{{Month: "Feb", Value: 10}, {Month: "Nov", Value: 5}}
	if got := SparseMonthlySeries(records); !reflect.DeepEqual(got, want) {
		t.Errorf("SparseMonthlySeries = %v, want %v", got, want)
	}
}

func TestSparseMonthlySeries_Empty(t *testing.T) {
	if got := SparseMonthlySeries(nil); len(got) != 0 {
		t.Errorf("SparseMonthlySeries(nil) = %v, want empty", got)
	}
}

func TestLabelDistribution_FirstAppearanceOrder(t *testing.T) {
	records := []Record{
		{Label: "Food", Amount: 10, Icon: "🍔"},
		{Label: "Gas", Amount: 5, Icon: "⛽"},
		{Label: "Food", Amount: 7, Icon: "🍕"}, // later icon must not win
	}
	want := []LabelSum{
		{Label: "Food", Amount: 17, Icon: "🍔"},
		{Label: "Gas", Amount: 5, Icon: "⛽"},
	}
	if got := LabelDistribution(records); !reflect.DeepEqual(got, want) {
		t.Errorf("LabelDistribution = %v, want %v", got, want)
	}
}

func TestLabelDistribution_CaseSensitive(t *testing.T) {
	records := []Record{
		{Label: "Food", Amount: 10},
		{Label: "food", Amount: 5},
	}
	got := LabelDistribution(records)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (labels differ by case)", len(got))
	}
}

func TestLabelDistribution_Empty(t *testing.T) {
	got := LabelDistribution(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("LabelDistribution(nil) = %v, want empty non-nil slice", got)
	}
}

func TestRecentTransactions_NewestFirstWithLimit(t *testing.T) {
	incomes := []Record{
		{ID: "i1", Kind: KindIncome, Amount: 1, Date: "2024-01-10"},
		{ID: "i2", Kind: KindIncome, Amount: 2, Date: "2024-03-05"},
		{ID: "i3", Kind: KindIncome, Amount: 3, Date: "2024-02-01"},
	}
	expenses := []Record{
		{ID: "e1", Kind: KindExpense, Amount: 4, Date: "2024-02-20"},
		{ID: "e2", Kind: KindExpense, Amount: 5, Date: "2024-01-01"},
		{ID: "e3", Kind: KindExpense, Amount: 6, Date: "2024-03-01"},
		{ID: "e4", Kind: KindExpense, Amount: 7, Date: "2024-01-05"},
	}
	got := RecentTransactions(incomes, expenses, 5)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	wantIDs := []string{"i2", "e3", "e1", "i3", "i1"}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRecentTransactions_StableOnDateTies(t *testing.T) {
	incomes := []Record{{ID: "i1", Kind: KindIncome, Date: "2024-01-10"}}
	expenses := []Record{{ID: "e1", Kind: KindExpense, Date: "2024-01-10"}}
	got := RecentTransactions(incomes, expenses, 10)
	if got[0].ID != "i1" || got[1].ID != "e1" {
		t.Errorf("tie order = [%s %s], want [i1 e1]", got[0].ID, got[1].ID)
	}
}

func TestRecentTransactions_UnparseableDatesSortLast(t *testing.T) {
	incomes := []Record{{ID: "bad", Date: "nope"}}
	expenses := []Record{{ID: "ok", Date: "2024-01-01"}}
	got := RecentTransactions(incomes, expenses, 10)
	if got[len(got)-1].ID != "bad" {
		t.Errorf("last = %q, want bad", got[len(got)-1].ID)
	}
}

// TestAggregation_DoesNotMutateInput guards the purity contract: the
// same slice fed twice must produce identical results and stay intact.
func TestAggregation_DoesNotMutateInput(t *testing.T) {
	records := expenseRecords()
	snapshot := make([]Record, len(records))
	copy(snapshot, records)

	first := MonthlySeries(records)
	TotalAmount(records)
	LabelDistribution(records)
	RecentTransactions(records, nil, 1)
	second := MonthlySeries(records)

	if !reflect.DeepEqual(records, snapshot) {
		t.Error("input slice was mutated")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls disagree")
	}
}

// TestDashboardScenario runs the combined example: one salary income,
// rent and food expenses, checked across all derivations at once.
func TestDashboardScenario(t *testing.T) {
	incomes := []Record{
		{Kind: KindIncome, Label: "Salary", Amount: 3000, Date: "2024-01-15"},
	}
	expenses := []Record{
		{Kind: KindExpense, Label: "Rent", Amount: 1200, Date: "2024-01-01"},
		{Kind: KindExpense, Label: "Food", Amount: 300, Date: "2024-02-10"},
	}

	if got := TotalAmount(expenses); got != 1500 {
		t.Errorf("TotalAmount(expenses) = %v, want 1500", got)
	}

	series := MonthlySeries(expenses)
	for i, b := range series {
		want := 0.0
		switch b.Month {
		case "Jan":
			want = 1200
		case "Feb":
			want = 300
		}
		if b.Value != want {
			t.Errorf("series[%d] %s = %v, want %v", i, b.Month, b.Value, want)
		}
	}

	dist := LabelDistribution(expenses)
	want := []LabelSum{
		{Label: "Rent", Amount: 1200},
		{Label: "Food", Amount: 300},
	}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("LabelDistribution = %v, want %v", dist, want)
	}

	recent := RecentTransactions(incomes, expenses, 5)
	if len(recent) != 3 || recent[0].Label != "Food" {
		t.Errorf("recent = %v, want Food first", recent)
	}
}
