package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	username string
	profile  string
	txType   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of a profile" }
func (*txCmd) Usage() string {
	return `fin tx -u <username> [-profile <name>] [-t <income|expense>]

  Lists the transactions of one profile in ledger order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.txType, "t", "", "Only this transaction type: income or expense")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		errf("Error: -u is required\n")
		return subcommands.ExitUsageError
	}

	users, ledger, _ := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	preds := []finbook.Predicate{finbook.ByProfile(p.ProfileID)}
	if c.txType != "" {
		tt, err := finbook.ParseTxType(c.txType)
		if err != nil {
			errf("Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		preds = append(preds, finbook.ByType(tt))
	}

	seq, err := ledger.Transactions(preds...)
	if err != nil {
		errf("Error reading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	var rows []finbook.Transaction
	for tx := range seq {
		rows = append(rows, tx)
	}

	title := fmt.Sprintf("Transactions for %s", p.ProfileName)
	printMarkdown(renderer.TransactionsMarkdown(title, rows, p.Currency))
	return subcommands.ExitSuccess
}
