package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	username string
	profile  string
	id       string
	amount   string
	category string
	date     string
	desc     string
	method   string

	// set tracks which field flags were explicitly given, so an empty
	// string can still clear the description.
	set map[string]bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an existing transaction" }
func (*editCmd) Usage() string {
	return `fin edit -u <username> -id <transaction-id> [-a <amount>] [-c <category>] [-d <date>] [-desc <text>] [-m <method>]

  Applies the given fields to the transaction. Each field is validated
  independently: invalid values are rejected and reported while the
  valid ones are applied.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.id, "id", "", "Transaction id (see 'fin tx')")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.category, "c", "", "New category")
	f.StringVar(&c.date, "d", "", "New date (YYYY-MM-DD)")
	f.StringVar(&c.desc, "desc", "", "New description")
	f.StringVar(&c.method, "m", "", "New payment method")
}

func (c *editCmd) patch(f *flag.FlagSet) finbook.Patch {
	c.set = map[string]bool{}
	f.Visit(func(fl *flag.Flag) { c.set[fl.Name] = true })

	var patch finbook.Patch
	if c.set["a"] {
		patch.Amount = &c.amount
	}
	if c.set["c"] {
		patch.Category = &c.category
	}
	if c.set["d"] {
		patch.Date = &c.date
	}
	if c.set["desc"] {
		patch.Description = &c.desc
	}
	if c.set["m"] {
		patch.PaymentMethod = &c.method
	}
	return patch
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.id == "" {
		errf("Error: -u and -id are required\n")
		return subcommands.ExitUsageError
	}

	users, ledger, _ := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, rejected, err := ledger.Update(c.id, p.ProfileID, c.patch(f))
	if err != nil {
		errf("Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(rejected) > 0 {
		errf("Warning: rejected invalid field(s): %s\n", strings.Join(rejected, ", "))
	}
	fmt.Printf("Updated transaction %s: %s %s on %s\n", tx.ID, tx.Type, tx.Amount, tx.Date)
	return subcommands.ExitSuccess
}
