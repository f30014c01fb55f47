package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	username string
	profile  string
	txType   string
	amount   string
	category string
	date     string
	desc     string
	method   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `fin add -u <username> -t <income|expense> -a <amount> -c <category> [-d <date>] [-m <method>] [-desc <text>] [-profile <name>]

  Appends one transaction to the ledger. The date defaults to today.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username owning the transaction")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.txType, "t", "expense", "Transaction type: income or expense")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal")
	f.StringVar(&c.category, "c", "", "Category, e.g. Groceries")
	f.StringVar(&c.date, "d", finbook.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.desc, "desc", "", "Free-text description")
	f.StringVar(&c.method, "m", "Cash", "Payment method")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.amount == "" || c.category == "" {
		errf("Error: -u, -a and -c are required\n")
		return subcommands.ExitUsageError
	}
	tt, err := finbook.ParseTxType(c.txType)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		errf("Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	date, err := finbook.ParseDate(c.date)
	if err != nil {
		errf("Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	users, ledger, _ := openStores()
	u, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tx := finbook.Transaction{
		ID:            finbook.NewTransactionID(),
		User:          u.Name,
		ProfileID:     p.ProfileID,
		Type:          tt,
		Amount:        amount,
		Category:      c.category,
		Date:          date,
		Description:   c.desc,
		PaymentMethod: c.method,
	}
	if err := ledger.Append(tx); err != nil {
		errf("Error appending transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(renderer.Transaction(tx, p.Currency))
	return subcommands.ExitSuccess
}
