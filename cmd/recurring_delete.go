package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// recurringDeleteCmd holds the flags for the 'delete-recurring' subcommand.
type recurringDeleteCmd struct {
	username string
	id       string
	password string
}

func (*recurringDeleteCmd) Name() string     { return "delete-recurring" }
func (*recurringDeleteCmd) Synopsis() string { return "delete a recurring transaction template" }
func (*recurringDeleteCmd) Usage() string {
	return `fin delete-recurring -u <username> -id <recurring-id>

  Removes the template. Transactions it already materialized stay in
  the ledger. The user's password is asked for again first.
`
}

func (c *recurringDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.id, "id", "", "Recurring template id (see 'fin recurring')")
	f.StringVar(&c.password, "password", "", "Password (prompted for when omitted)")
}

func (c *recurringDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.id == "" {
		errf("Error: -u and -id are required\n")
		return subcommands.ExitUsageError
	}

	users, _, schedule := openStores()
	if err := confirmIdentity(users, c.username, c.password); err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := schedule.Delete(c.id); err != nil {
		errf("Error deleting recurring transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted recurring %s\n", c.id)
	return subcommands.ExitSuccess
}
