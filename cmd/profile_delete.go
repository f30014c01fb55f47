package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// profileDeleteCmd holds the flags for the 'delete-profile' subcommand.
type profileDeleteCmd struct {
	username string
	name     string
	password string
}

func (*profileDeleteCmd) Name() string     { return "delete-profile" }
func (*profileDeleteCmd) Synopsis() string { return "delete a profile and all its transactions" }
func (*profileDeleteCmd) Usage() string {
	return `fin delete-profile -u <username> -name <profile-name>

  Deletes the profile and every transaction recorded under it. The
  user's password is asked for again before anything is written. The
  last remaining profile of a user cannot be deleted.
`
}

func (c *profileDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.name, "name", "", "Name of the profile to delete")
	f.StringVar(&c.password, "password", "", "Password (prompted for when omitted)")
}

func (c *profileDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.name == "" {
		errf("Error: -u and -name are required\n")
		return subcommands.ExitUsageError
	}

	users, _, _ := openStores()
	_, p, err := resolveProfile(users, c.username, c.name)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := confirmIdentity(users, c.username, c.password); err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := users.DeleteProfile(c.username, p.ProfileID); err != nil {
		errf("Error deleting profile: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted profile %q and its transactions\n", p.ProfileName)
	return subcommands.ExitSuccess
}
