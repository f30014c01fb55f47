package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// profilesCmd holds the flags for the 'profiles' subcommand.
type profilesCmd struct {
	username string
}

func (*profilesCmd) Name() string     { return "profiles" }
func (*profilesCmd) Synopsis() string { return "list the profiles of a user" }
func (*profilesCmd) Usage() string {
	return `fin profiles -u <username>

  Lists the user's profiles with their ids and currencies.
`
}

func (c *profilesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
}

func (c *profilesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		errf("Error: -u is required\n")
		return subcommands.ExitUsageError
	}

	users, _, _ := openStores()
	u, err := users.Find(c.username)
	if err != nil {
		errf("Error: unknown user %q: %v\n", c.username, err)
		return subcommands.ExitFailure
	}
	for _, p := range u.Profiles {
		fmt.Printf("%s\t%s\t%s\n", p.ProfileID, p.ProfileName, p.Currency)
	}
	return subcommands.ExitSuccess
}
