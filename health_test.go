package finbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestHealthScore(t *testing.T) {
	testCases := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"deep deficit floors at zero", -1.0, 0},
		{"mild deficit", -0.1, 15},
		{"break even", 0, 25},
		{"saving 5 percent", 0.05, 37.5},
		{"saving 10 percent", 0.1, 50},
		{"saving 25 percent", 0.25, 75},
		{"saving 40 percent", 0.4, 90},
		{"saving 60 percent", 0.6, 95},
		{"saving everything", 1.0, 100},
		{"absurd ratio caps at 100", 3.0, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HealthScore(tc.ratio); got != tc.want {
				t.Errorf("HealthScore(%v) = %v, want %v", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestHealthStatus(t *testing.T) {
	testCases := []struct {
		score float64
		want  string
	}{
		{0, "Critical"},
		{39.99, "Critical"},
		{40, "Weak"},
		{60, "Good"},
		{75, "Very Good"},
		{89.99, "Very Good"},
		{90, "Excellent"},
		{100, "Excellent"},
	}
	for _, tc := range testCases {
		if got := HealthStatus(tc.score); got != tc.want {
			t.Errorf("HealthStatus(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestHealth(t *testing.T) {
	ledger := newTestLedger(t)

	// Three months: saving half, no income, deficit.
	rows := []struct {
		tt     TxType
		amount int64
		date   string
	}{
		{Income, 2000, "2026-01-05"},
		{Expense, 1000, "2026-01-20"},
		{Expense, 300, "2026-02-10"},
		{Income, 1000, "2026-03-05"},
		{Expense, 1500, "2026-03-20"},
	}
	for _, r := range rows {
		tx := Transaction{
			ID:            NewTransactionID(),
			User:          "alice",
			ProfileID:     "p1",
			Type:          r.tt,
			Amount:        decimal.NewFromInt(r.amount),
			Category:      "X",
			Date:          MustParseDate(r.date),
			PaymentMethod: "Cash",
		}
		if err := ledger.Append(tx); err != nil {
			t.Fatal(err)
		}
	}

	report, err := Health(ledger, "p1")
	if err != nil {
		t.Fatalf("Health() failed: %v", err)
	}
	if len(report.Months) != 3 {
		t.Fatalf("got %d months, want 3", len(report.Months))
	}

	jan := report.Months[0]
	if !jan.Scored {
		t.Error("january has income, it must be scored")
	}
	if jan.Score != HealthScore(0.5) {
		t.Errorf("january score = %v, want %v", jan.Score, HealthScore(0.5))
	}

	feb := report.Months[1]
	if feb.Scored {
		t.Error("february has no income, it must not be scored")
	}

	mar := report.Months[2]
	if !mar.Scored || mar.Score >= 25 {
		t.Errorf("march is a deficit month, score = %v, want < 25", mar.Score)
	}

	// Two scored months: average, but no recent trend.
	wantAvg := (jan.Score + mar.Score) / 2
	if report.Average != wantAvg {
		t.Errorf("average = %v, want %v", report.Average, wantAvg)
	}
	if report.HasRecent {
		t.Error("recent trend requires three scored months")
	}
}

func TestHealthEmptyProfile(t *testing.T) {
	ledger := newTestLedger(t)

	report, err := Health(ledger, "p1")
	if err != nil {
		t.Fatalf("Health() failed: %v", err)
	}
	if len(report.Months) != 0 || report.Average != 0 || report.HasRecent {
		t.Errorf("empty profile report = %+v, want zero value", report)
	}
}
