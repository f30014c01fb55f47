package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// recurringCmd holds the flags for the 'recurring' subcommand.
type recurringCmd struct {
	username string
	profile  string
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "list the recurring transactions of a profile" }
func (*recurringCmd) Usage() string {
	return `fin recurring -u <username> [-profile <name>]

  Lists the recurring transaction templates of one profile with their
  schedule and status.
`
}

func (c *recurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
}

func (c *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		errf("Error: -u is required\n")
		return subcommands.ExitUsageError
	}

	users, _, schedule := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	list, err := schedule.ForUser(c.username, p.ProfileID)
	if err != nil {
		errf("Error reading recurring transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RecurringMarkdown(p.ProfileName, list, p.Currency))
	return subcommands.ExitSuccess
}
