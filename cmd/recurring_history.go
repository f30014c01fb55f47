package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// recurringHistoryCmd holds the flags for the 'recurring-history' subcommand.
type recurringHistoryCmd struct {
	id string
}

func (*recurringHistoryCmd) Name() string { return "recurring-history" }
func (*recurringHistoryCmd) Synopsis() string {
	return "list the transactions a recurring template materialized"
}
func (*recurringHistoryCmd) Usage() string {
	return `fin recurring-history -id <recurring-id>

  Lists the ledger transactions generated by one template.
`
}

func (c *recurringHistoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Recurring template id (see 'fin recurring')")
}

func (c *recurringHistoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		errf("Error: -id is required\n")
		return subcommands.ExitUsageError
	}

	users, _, schedule := openStores()
	r, err := schedule.Find(c.id)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}
	history, err := schedule.History(c.id)
	if err != nil {
		errf("Error reading history: %v\n", err)
		return subcommands.ExitFailure
	}

	currency := "USD"
	if u, err := users.Find(r.Username); err == nil {
		if p, ok := u.FindProfile(r.ProfileID); ok {
			currency = p.Currency
		}
	}
	title := fmt.Sprintf("History of %s", r.Name)
	printMarkdown(renderer.TransactionsMarkdown(title, history, currency))
	return subcommands.ExitSuccess
}
