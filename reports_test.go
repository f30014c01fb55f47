package finbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

// seedReportLedger fills a ledger with a small known book for profile p1.
func seedReportLedger(t *testing.T) *LedgerStore {
	t.Helper()
	ledger := newTestLedger(t)

	rows := []struct {
		tt       TxType
		amount   float64
		category string
		date     string
		desc     string
	}{
		{Income, 3000, "Salary", "2026-01-05", "january pay"},
		{Expense, 800, "Rent", "2026-01-06", ""},
		{Expense, 120, "Groceries", "2026-01-10", "market"},
		{Expense, 60, "Groceries", "2026-01-20", ""},
		{Income, 3000, "Salary", "2026-02-05", "february pay"},
		{Expense, 800, "Rent", "2026-02-06", ""},
		{Expense, 45, "Dining", "2026-02-14", "valentine"},
	}
	for _, r := range rows {
		tx := Transaction{
			ID:            NewTransactionID(),
			User:          "alice",
			ProfileID:     "p1",
			Type:          r.tt,
			Amount:        decimal.NewFromFloat(r.amount),
			Category:      r.category,
			Date:          MustParseDate(r.date),
			Description:   r.desc,
			PaymentMethod: "Cash",
		}
		if err := ledger.Append(tx); err != nil {
			t.Fatal(err)
		}
	}
	// Noise from another profile, must never leak into p1 reports.
	if err := ledger.Append(seedTx("bob", "p2", "Rent")); err != nil {
		t.Fatal(err)
	}
	return ledger
}

func TestSummarize(t *testing.T) {
	ledger := seedReportLedger(t)

	s, err := Summarize(ledger, "p1")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if want := decimal.NewFromInt(6000); !s.Income.Equal(want) {
		t.Errorf("income = %s, want %s", s.Income, want)
	}
	if want := decimal.NewFromInt(1825); !s.Expenses.Equal(want) {
		t.Errorf("expenses = %s, want %s", s.Expenses, want)
	}
	if want := decimal.NewFromInt(4175); !s.Net().Equal(want) {
		t.Errorf("net = %s, want %s", s.Net(), want)
	}
	if s.Count != 7 {
		t.Errorf("count = %d, want 7", s.Count)
	}
	if len(s.TopCategories) == 0 || s.TopCategories[0].Category != "Rent" {
		t.Errorf("top category = %+v, want Rent first", s.TopCategories)
	}
}

func TestMonthlyReport(t *testing.T) {
	ledger := seedReportLedger(t)

	rows, err := MonthlyReport(ledger, "p1")
	if err != nil {
		t.Fatalf("MonthlyReport() failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d months, want 2", len(rows))
	}
	if rows[0].Month != "2026-01" || rows[1].Month != "2026-02" {
		t.Errorf("months = %s, %s, want chronological 2026-01, 2026-02", rows[0].Month, rows[1].Month)
	}
	if want := decimal.NewFromInt(980); !rows[0].Expenses.Equal(want) {
		t.Errorf("january expenses = %s, want %s", rows[0].Expenses, want)
	}
	if want := decimal.NewFromInt(2155); !rows[1].Net().Equal(want) {
		t.Errorf("february net = %s, want %s", rows[1].Net(), want)
	}
}

func TestSearch(t *testing.T) {
	ledger := seedReportLedger(t)

	min := decimal.NewFromInt(100)
	from := MustParseDate("2026-01-01")
	to := MustParseDate("2026-01-31")

	testCases := []struct {
		name   string
		filter SearchFilter
		want   int
	}{
		{"keyword in category", SearchFilter{Keyword: "groc"}, 2},
		{"keyword in description", SearchFilter{Keyword: "valentine"}, 1},
		{"date range", SearchFilter{From: &from, To: &to}, 4},
		{"min amount", SearchFilter{MinAmount: &min}, 5},
		{"type", SearchFilter{Type: Income}, 2},
		{"combined", SearchFilter{Keyword: "rent", From: &from, To: &to}, 1},
		{"no match", SearchFilter{Keyword: "yacht"}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := Search(ledger, "p1", tc.filter)
			if err != nil {
				t.Fatal(err)
			}
			if len(rows) != tc.want {
				t.Errorf("got %d rows, want %d", len(rows), tc.want)
			}
		})
	}
}

func TestSearchSorting(t *testing.T) {
	ledger := seedReportLedger(t)

	rows, err := Search(ledger, "p1", SearchFilter{SortBy: "amount", SortOrder: "desc"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Amount.GreaterThan(rows[i-1].Amount) {
			t.Fatalf("row %d (%s) > row %d (%s), want descending by amount", i, rows[i].Amount, i-1, rows[i-1].Amount)
		}
	}

	rows, err = Search(ledger, "p1", SearchFilter{SortBy: "date", SortOrder: "asc"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Date.Before(rows[i-1].Date) {
			t.Fatalf("row %d (%s) before row %d (%s), want ascending by date", i, rows[i].Date, i-1, rows[i-1].Date)
		}
	}
}
