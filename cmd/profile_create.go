package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// profileCreateCmd holds the flags for the 'new-profile' subcommand.
type profileCreateCmd struct {
	username string
	name     string
	currency string
}

func (*profileCreateCmd) Name() string     { return "new-profile" }
func (*profileCreateCmd) Synopsis() string { return "add a profile to a user" }
func (*profileCreateCmd) Usage() string {
	return `fin new-profile -u <username> -name <profile-name> [-currency <code>]

  Adds a profile. Profile names are unique per user, ignoring case.
`
}

func (c *profileCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.name, "name", "", "Name of the new profile")
	f.StringVar(&c.currency, "currency", "USD", "Currency code of the new profile")
}

func (c *profileCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.name == "" {
		errf("Error: -u and -name are required\n")
		return subcommands.ExitUsageError
	}

	users, _, _ := openStores()
	p, err := users.CreateProfile(c.username, c.name, c.currency)
	if err != nil {
		errf("Error creating profile: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created profile %q (%s) with id %s\n", p.ProfileName, p.Currency, p.ProfileID)
	return subcommands.ExitSuccess
}
