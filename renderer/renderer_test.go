package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/finbook/finbook"
	"github.com/shopspring/decimal"
)

func sampleTx() finbook.Transaction {
	return finbook.Transaction{
		ID:            "tx-1",
		User:          "alice",
		ProfileID:     "p1",
		Type:          finbook.Expense,
		Amount:        decimal.NewFromFloat(12.50),
		Category:      "Groceries",
		Date:          finbook.NewDate(2026, time.March, 15),
		Description:   "market",
		PaymentMethod: "Cash",
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	got := TransactionsMarkdown("Transactions for Personal", []finbook.Transaction{sampleTx()}, "USD")

	for _, want := range []string{
		"# Transactions for Personal",
		"2026-03-15",
		"Groceries",
		"-$12.50",
		"tx-1",
		"1 transaction(s).",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTransactionsMarkdownEmpty(t *testing.T) {
	got := TransactionsMarkdown("Transactions for Personal", nil, "USD")
	if !strings.Contains(got, "No transactions found.") {
		t.Errorf("empty list output:\n%s", got)
	}
}

func TestTransactionOneLiner(t *testing.T) {
	tx := sampleTx()
	if got := Transaction(tx, "USD"); !strings.Contains(got, "Spent $12.50 on Groceries") {
		t.Errorf("Transaction() = %q", got)
	}
	tx.Type = finbook.Income
	tx.Category = "Salary"
	if got := Transaction(tx, "USD"); !strings.Contains(got, "Received $12.50 in Salary") {
		t.Errorf("Transaction() = %q", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := finbook.Summary{
		Income:   decimal.NewFromInt(3000),
		Expenses: decimal.NewFromInt(1825),
		Count:    7,
		TopCategories: []finbook.CategoryTotal{
			{Category: "Rent", Total: decimal.NewFromInt(1600)},
		},
	}
	got := SummaryMarkdown("Personal", s, "USD")

	for _, want := range []string{
		"# Summary for Personal",
		"$3,000.00",
		"$1,175.00", // net
		"## Top Expense Categories",
		"Rent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHealthMarkdown(t *testing.T) {
	r := finbook.HealthReport{
		Months: []finbook.MonthHealth{
			{
				MonthlyTotal: finbook.MonthlyTotal{Month: "2026-01", Income: decimal.NewFromInt(2000), Expenses: decimal.NewFromInt(1000)},
				Ratio:        0.5, Score: 92.5, Scored: true,
			},
			{
				MonthlyTotal: finbook.MonthlyTotal{Month: "2026-02", Expenses: decimal.NewFromInt(300)},
			},
		},
		Average: 92.5,
	}
	got := HealthMarkdown("Personal", r, "USD")

	for _, want := range []string{
		"# Financial Health for Personal",
		"92.50 (Excellent)",
		"2026-01",
		"no income",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRecurringMarkdown(t *testing.T) {
	end := finbook.NewDate(2026, time.December, 31)
	list := []finbook.RecurringTemplate{
		{
			RecurringID:  "r1",
			Name:         "Rent",
			Type:         finbook.Expense,
			Amount:       decimal.NewFromInt(850),
			IntervalDays: 30,
			NextDate:     finbook.NewDate(2026, time.September, 1),
			EndDate:      &end,
			Status:       finbook.Active,
		},
		{
			RecurringID:  "r2",
			Name:         "Salary",
			Type:         finbook.Income,
			Amount:       decimal.NewFromInt(3000),
			IntervalDays: 30,
			NextDate:     finbook.NewDate(2026, time.September, 5),
			Status:       finbook.Paused,
		},
	}
	got := RecurringMarkdown("Personal", list, "USD")

	for _, want := range []string{
		"# Recurring Transactions for Personal",
		"Rent",
		"30d",
		"2026-12-31",
		"Paused",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
