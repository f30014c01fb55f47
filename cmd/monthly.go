package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	username string
	profile  string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display month-by-month totals" }
func (*monthlyCmd) Usage() string {
	return `fin monthly -u <username> [-profile <name>]

  Displays income, expenses and net per calendar month, oldest first.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rows, err := finbook.MonthlyReport(ledger, p.ProfileID)
	if err != nil {
		errf("Error computing monthly report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MonthlyMarkdown(p.ProfileName, rows, p.Currency))
	return subcommands.ExitSuccess
}
