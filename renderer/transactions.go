// Package renderer formats finbook data as markdown strings, ready to
// be printed raw or through a terminal markdown renderer.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/finbook/finbook"
	md "github.com/nao1215/markdown"
)

// TransactionsMarkdown renders a list of transactions as a markdown table.
func TransactionsMarkdown(title string, rows []finbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)

	if len(rows) == 0 {
		doc.PlainText("No transactions found.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Date", "Type", "Category", "Amount", "Payment", "Description", "ID"},
		Rows:   [][]string{},
	}
	for _, tx := range rows {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			signedAmount(tx, currency),
			tx.PaymentMethod,
			tx.Description,
			tx.ID,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d transaction(s).", len(rows)))

	return doc.String()
}

// Transaction renders a transaction to a one-line string, for logs and
// confirmation messages.
func Transaction(tx finbook.Transaction, currency string) string {
	amount := finbook.M(tx.Amount, currency)
	switch tx.Type {
	case finbook.Income:
		return fmt.Sprintf("Received %s in %s on %s", amount, tx.Category, tx.Date)
	case finbook.Expense:
		return fmt.Sprintf("Spent %s on %s on %s", amount, tx.Category, tx.Date)
	default:
		return fmt.Sprintf("%s %s in %s on %s", tx.Type, amount, tx.Category, tx.Date)
	}
}

// signedAmount formats an amount with an explicit sign by type, so
// mixed tables read at a glance.
func signedAmount(tx finbook.Transaction, currency string) string {
	s := finbook.M(tx.Amount, currency).String()
	if tx.Type == finbook.Expense {
		return "-" + s
	}
	return "+" + s
}
