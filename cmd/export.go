package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	username string
	profile  string
	output   string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a profile's transactions to CSV" }
func (*exportCmd) Usage() string {
	return `fin export -u <username> [-profile <name>] [-o <file>]

  Writes the profile's transactions as CSV, to stdout by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.output, "o", "", "Output file (default stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if c.output != "" {
		var err error
		out, err = os.Create(c.output)
		if err != nil {
			errf("Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	n, err := finbook.ExportProfile(out, ledger, p.ProfileID)
	if err != nil {
		errf("Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d transaction(s) to %s\n", n, c.output)
	}
	return subcommands.ExitSuccess
}
