package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// recurringRunCmd holds the flags for the 'run-recurring' subcommand.
type recurringRunCmd struct {
	date string
}

func (*recurringRunCmd) Name() string     { return "run-recurring" }
func (*recurringRunCmd) Synopsis() string { return "materialize due recurring transactions" }
func (*recurringRunCmd) Usage() string {
	return `fin run-recurring [-d <date>]

  Writes one transaction for every active template whose next
  occurrence date has been reached. A template lagging by several
  intervals catches up one occurrence per run.
`
}

func (c *recurringRunCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Run as of this date (YYYY-MM-DD)")
}

func (c *recurringRunCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf, err := finbook.ParseDate(c.date)
	if err != nil {
		errf("Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, _, schedule := openStores()
	n, err := schedule.ExecuteDue(asOf)
	if err != nil {
		errf("Error running recurring transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Materialized %d recurring transaction(s)\n", n)
	return subcommands.ExitSuccess
}
