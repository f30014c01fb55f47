package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// healthCmd holds the flags for the 'health' subcommand.
type healthCmd struct {
	username string
	profile  string
}

func (*healthCmd) Name() string     { return "health" }
func (*healthCmd) Synopsis() string { return "display a financial health score" }
func (*healthCmd) Usage() string {
	return `fin health -u <username> [-profile <name>]

  Scores each month's savings ratio on a 0-100 scale and shows the
  average and the recent trend.
`
}

func (c *healthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
}

func (c *healthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		errf("Error: -u is required\n")
		return subcommands.ExitUsageError
	}

	users, ledger, _ := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := finbook.Health(ledger, p.ProfileID)
	if err != nil {
		errf("Error computing health report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HealthMarkdown(p.ProfileName, r, p.Currency))
	return subcommands.ExitSuccess
}
