package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// recurringStatusCmd implements both 'pause-recurring' and
// 'resume-recurring', which differ only in the status they set.
type recurringStatusCmd struct {
	pause bool
	id    string
}

func (c *recurringStatusCmd) Name() string {
	if c.pause {
		return "pause-recurring"
	}
	return "resume-recurring"
}

func (c *recurringStatusCmd) Synopsis() string {
	if c.pause {
		return "pause a recurring transaction template"
	}
	return "resume a paused recurring transaction template"
}

func (c *recurringStatusCmd) Usage() string {
	return fmt.Sprintf(`fin %s -id <recurring-id>

  Completed templates cannot change status.
`, c.Name())
}

func (c *recurringStatusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Recurring template id (see 'fin recurring')")
}

func (c *recurringStatusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		errf("Error: -id is required\n")
		return subcommands.ExitUsageError
	}
	status := finbook.Active
	if c.pause {
		status = finbook.Paused
	}

	_, _, schedule := openStores()
	ok, err := schedule.SetStatus(c.id, status)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !ok {
		errf("Error: recurring %s not found or already completed\n", c.id)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recurring %s is now %s\n", c.id, status)
	return subcommands.ExitSuccess
}
