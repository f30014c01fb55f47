package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// registerCmd holds the flags for the 'register' subcommand.
type registerCmd struct {
	username string
	password string
	profile  string
	currency string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new user with a default profile" }
func (*registerCmd) Usage() string {
	return `fin register -u <username> [-profile <name>] [-currency <code>]

  Creates a new user. The password is prompted for. Every user starts
  with one profile, "Default" unless -profile says otherwise.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username (3-20 letters, digits, '_' or '-')")
	f.StringVar(&c.password, "password", "", "Password (prompted for when omitted)")
	f.StringVar(&c.profile, "profile", "Default", "Name of the initial profile")
	f.StringVar(&c.currency, "currency", "USD", "Currency code of the initial profile")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		errf("Error: -u is required\n")
		return subcommands.ExitUsageError
	}
	password := c.password
	if password == "" {
		var err error
		password, err = promptPassword("Choose a password: ")
		if err != nil {
			errf("Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	users, _, _ := openStores()
	u, err := users.Register(c.username, password, c.profile, c.currency)
	if err != nil {
		errf("Error registering user: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered user %q with profile %q (%s)\n", u.Name, u.Profiles[0].ProfileName, u.Profiles[0].Currency)
	return subcommands.ExitSuccess
}
