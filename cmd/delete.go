package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	username string
	profile  string
	id       string
	password string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction (asks for the password)" }
func (*deleteCmd) Usage() string {
	return `fin delete -u <username> -id <transaction-id>

  Permanently removes one transaction. The user's password is asked
  for again before anything is written.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.id, "id", "", "Transaction id (see 'fin tx')")
	f.StringVar(&c.password, "password", "", "Password (prompted for when omitted)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := confirmIdentity(users, c.username, c.password); err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.Delete(c.id, p.ProfileID); err != nil {
		errf("Error deleting transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
