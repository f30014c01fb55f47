package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// RecurringMarkdown renders the recurring templates of a profile.
func RecurringMarkdown(profile string, list []finbook.RecurringTemplate, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Recurring Transactions for %s", profile))

	if len(list) == 0 {
		doc.PlainText("No recurring transactions found.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Type", "Amount", "Every", "Next", "End", "Status", "ID"},
		Rows:   [][]string{},
	}
	for _, r := range list {
		end := "-"
		if r.EndDate != nil {
			end = r.EndDate.String()
		}
		table.Rows = append(table.Rows, []string{
			r.Name,
			string(r.Type),
			finbook.M(r.Amount, currency).String(),
			fmt.Sprintf("%dd", r.IntervalDays),
			r.NextDate.String(),
			end,
			string(r.Status),
			r.RecurringID,
		})
	}
	doc.Table(table)

	return doc.String()
}
