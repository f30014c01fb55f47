package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders an income/expense summary for one profile.
func SummaryMarkdown(profile string, s finbook.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary for %s", profile))

	doc.Table(md.TableSet{
		Header: []string{md.Bold("Net"), md.Bold(finbook.M(s.Net(), currency).String())},
		Rows: [][]string{
			{"Total Income", finbook.M(s.Income, currency).String()},
			{"Total Expenses", finbook.M(s.Expenses, currency).String()},
			{"Transactions", fmt.Sprintf("%d", s.Count)},
		},
	})

	if len(s.TopCategories) > 0 {
		doc.H2("Top Expense Categories")
		table := md.TableSet{
			Header: []string{"Category", "Total"},
			Rows:   [][]string{},
		}
		for _, c := range s.TopCategories {
			table.Rows = append(table.Rows, []string{
				c.Category,
				finbook.M(c.Total, currency).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// MonthlyMarkdown renders the month-by-month totals of a profile.
func MonthlyMarkdown(profile string, rows []finbook.MonthlyTotal, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Report for %s", profile))

	if len(rows) == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Month", "Income", "Expenses", "Net"},
		Rows:   [][]string{},
	}
	for _, m := range rows {
		table.Rows = append(table.Rows, []string{
			m.Month,
			finbook.M(m.Income, currency).String(),
			finbook.M(m.Expenses, currency).String(),
			finbook.M(m.Net(), currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
