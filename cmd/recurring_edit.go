package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// recurringEditCmd holds the flags for the 'edit-recurring' subcommand.
type recurringEditCmd struct {
	id       string
	name     string
	amount   string
	interval int
	end      string
}

func (*recurringEditCmd) Name() string     { return "edit-recurring" }
func (*recurringEditCmd) Synopsis() string { return "edit a recurring transaction template" }
func (*recurringEditCmd) Usage() string {
	return `fin edit-recurring -id <recurring-id> [-name <name>] [-a <amount>] [-every <days>] [-end <date>]

  Edits the template in place. Passing -end "" removes the end date.
  Completed templates cannot be edited. The next occurrence date is
  not recomputed.
`
}

func (c *recurringEditCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Recurring template id (see 'fin recurring')")
	f.StringVar(&c.name, "name", "", "New template name")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.IntVar(&c.interval, "every", 0, "New interval between occurrences, in days")
	f.StringVar(&c.end, "end", "", "New end date, or empty to remove it")
}

func (c *recurringEditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		errf("Error: -id is required\n")
		return subcommands.ExitUsageError
	}

	var patch finbook.RecurringPatch
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["name"] {
		patch.Name = &c.name
	}
	if set["a"] {
		v, err := decimal.NewFromString(c.amount)
		if err != nil {
			errf("Error parsing amount %q: %v\n", c.amount, err)
			return subcommands.ExitUsageError
		}
		patch.Amount = &v
	}
	if set["every"] {
		patch.IntervalDays = &c.interval
	}
	if set["end"] {
		patch.EndDate = &c.end
	}

	_, _, schedule := openStores()
	r, err := schedule.UpdateFields(c.id, patch)
	if err != nil {
		errf("Error editing recurring transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated recurring %q, next occurrence on %s\n", r.Name, r.NextDate)
	return subcommands.ExitSuccess
}
