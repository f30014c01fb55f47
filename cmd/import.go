package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	username string
	profile  string
	input    string
	keepDups bool
	dryRun   bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `fin import -u <username> -i <file> [-profile <name>] [-keep-duplicates] [-dry-run]

  Imports transactions from a CSV file with the ledger's column
  layout. Rows belonging to other users or profiles are ignored.
  Rows whose id already exists in the ledger are skipped unless
  -keep-duplicates is given. -dry-run reports what would be imported
  without writing anything.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.input, "i", "", "CSV file to import")
	f.BoolVar(&c.keepDups, "keep-duplicates", false, "Import rows whose id already exists")
	f.BoolVar(&c.dryRun, "dry-run", false, "Validate and report without writing")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.input == "" {
		errf("Error: -u and -i are required\n")
		return subcommands.ExitUsageError
	}

	users, ledger, _ := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := os.Open(c.input)
	if err != nil {
		errf("Error opening %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	plan, err := finbook.PlanImport(in, ledger, c.username, p.ProfileID, !c.keepDups)
	if err != nil {
		errf("Error reading %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	for _, issue := range plan.Issues {
		errf("Warning: %s\n", issue)
	}
	if plan.Duplicates > 0 {
		fmt.Printf("Skipped %d duplicate row(s)\n", plan.Duplicates)
	}
	if c.dryRun {
		fmt.Printf("Would import %d transaction(s)\n", len(plan.Rows))
		return subcommands.ExitSuccess
	}

	n, err := plan.Apply(ledger)
	if err != nil {
		errf("Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transaction(s)\n", n)
	return subcommands.ExitSuccess
}
