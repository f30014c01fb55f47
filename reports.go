package finbook

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one category's share of a summary.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Summary aggregates a profile's ledger: totals, net savings, and
// expense categories ranked by spend.
type Summary struct {
	Income        decimal.Decimal
	Expenses      decimal.Decimal
	Count         int
	TopCategories []CategoryTotal
}

// Net returns income minus expenses.
func (s Summary) Net() decimal.Decimal { return s.Income.Sub(s.Expenses) }

// Summarize computes the summary report for one profile. Read-only.
func Summarize(ledger *LedgerStore, profileID string) (Summary, error) {
	seq, err := ledger.Transactions(ByProfile(profileID))
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	byCategory := make(map[string]decimal.Decimal)
	for t := range seq {
		sum.Count++
		switch t.Type {
		case Income:
			sum.Income = sum.Income.Add(t.Amount)
		case Expense:
			sum.Expenses = sum.Expenses.Add(t.Amount)
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	for cat, total := range byCategory {
		sum.TopCategories = append(sum.TopCategories, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(sum.TopCategories, func(i, j int) bool {
		a, b := sum.TopCategories[i], sum.TopCategories[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})
	return sum, nil
}

// MonthlyTotal aggregates one calendar month of a profile's ledger.
type MonthlyTotal struct {
	Month    string // "YYYY-MM"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns the month's income minus expenses.
func (m MonthlyTotal) Net() decimal.Decimal { return m.Income.Sub(m.Expenses) }

// MonthlyReport computes per-month totals for one profile, sorted
// chronologically. Read-only.
func MonthlyReport(ledger *LedgerStore, profileID string) ([]MonthlyTotal, error) {
	seq, err := ledger.Transactions(ByProfile(profileID))
	if err != nil {
		return nil, err
	}

	byMonth := make(map[string]*MonthlyTotal)
	for t := range seq {
		key := t.Date.MonthKey()
		m, ok := byMonth[key]
		if !ok {
			m = &MonthlyTotal{Month: key}
			byMonth[key] = m
		}
		switch t.Type {
		case Income:
			m.Income = m.Income.Add(t.Amount)
		case Expense:
			m.Expenses = m.Expenses.Add(t.Amount)
		}
	}

	months := make([]MonthlyTotal, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months, nil
}

// SearchFilter composes the optional predicates of a ledger search.
// Zero-valued fields skip their filter.
type SearchFilter struct {
	Keyword   string // matched in category or description, case-insensitive
	From      *Date
	To        *Date
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Type      TxType // empty matches both

	SortBy    string // "date", "amount", or "" for on-disk order
	SortOrder string // "asc" (default) or "desc"
}

// Predicate returns the conjunction of all set filters.
func (f SearchFilter) Predicate() Predicate {
	preds := []Predicate{}
	if f.Keyword != "" {
		preds = append(preds, ByKeyword(f.Keyword))
	}
	if f.From != nil {
		from := *f.From
		preds = append(preds, func(t Transaction) bool { return !t.Date.Before(from) })
	}
	if f.To != nil {
		to := *f.To
		preds = append(preds, func(t Transaction) bool { return !t.Date.After(to) })
	}
	if f.MinAmount != nil {
		min := *f.MinAmount
		preds = append(preds, func(t Transaction) bool { return t.Amount.GreaterThanOrEqual(min) })
	}
	if f.MaxAmount != nil {
		max := *f.MaxAmount
		preds = append(preds, func(t Transaction) bool { return t.Amount.LessThanOrEqual(max) })
	}
	if f.Type != "" {
		preds = append(preds, ByType(f.Type))
	}
	return And(preds...)
}

// Search scans one profile's ledger with the filter and sorts the
// result as requested. Without a sort key, on-disk append order is
// preserved.
func Search(ledger *LedgerStore, profileID string, f SearchFilter) ([]Transaction, error) {
	seq, err := ledger.Transactions(ByProfile(profileID), f.Predicate())
	if err != nil {
		return nil, err
	}
	var results []Transaction
	for t := range seq {
		results = append(results, t)
	}

	desc := f.SortOrder == "desc"
	switch f.SortBy {
	case "date":
		sort.SliceStable(results, func(i, j int) bool {
			if desc {
				return results[j].Date.Before(results[i].Date)
			}
			return results[i].Date.Before(results[j].Date)
		})
	case "amount":
		sort.SliceStable(results, func(i, j int) bool {
			if desc {
				return results[j].Amount.LessThan(results[i].Amount)
			}
			return results[i].Amount.LessThan(results[j].Amount)
		})
	}
	return results, nil
}
