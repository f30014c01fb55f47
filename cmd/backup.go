package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// backupCmd holds the flags for the 'backup' subcommand.
type backupCmd struct {
	force bool
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "snapshot the data files" }
func (*backupCmd) Usage() string {
	return `fin backup [-force]

  Copies the data files into the backup directory with a month suffix.
  Runs at most once per calendar month unless -force is given.
`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Snapshot even if this month's backup already ran")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b := appConfig().MonthlyBackup()
	today := finbook.Today()

	if !c.force && !b.Due(today) {
		fmt.Println("Backup already ran this month, nothing to do")
		return subcommands.ExitSuccess
	}
	n, err := b.Run(today)
	if err != nil {
		errf("Error running backup: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Backed up %d file(s) to %s\n", n, b.Dir)
	return subcommands.ExitSuccess
}

// Housekeeping runs the periodic jobs that would otherwise be
// forgotten: the monthly snapshot when it is due. It is called by the
// main package before dispatching any subcommand and never fails the
// command itself.
func Housekeeping() {
	b := appConfig().MonthlyBackup()
	today := finbook.Today()
	if !b.Due(today) {
		return
	}
	if n, err := b.Run(today); err != nil {
		errf("Warning: monthly backup failed: %v\n", err)
	} else if n > 0 {
		fmt.Printf("Monthly backup: copied %d file(s) to %s\n", n, b.Dir)
	}
}
