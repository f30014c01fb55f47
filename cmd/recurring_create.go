package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// recurringCreateCmd holds the flags for the 'new-recurring' subcommand.
type recurringCreateCmd struct {
	username string
	profile  string
	name     string
	txType   string
	amount   string
	interval string
	start    string
	end      string
}

// intervalPresets maps the usual schedules to their day counts.
var intervalPresets = map[string]int{
	"daily":    1,
	"weekly":   7,
	"biweekly": 14,
	"monthly":  30,
}

// parseInterval accepts a preset name or a positive day count.
func parseInterval(s string) (int, error) {
	if days, ok := intervalPresets[strings.ToLower(s)]; ok {
		return days, nil
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q, want daily, weekly, biweekly, monthly or a number of days", s)
	}
	return days, nil
}

func (*recurringCreateCmd) Name() string { return "new-recurring" }
func (*recurringCreateCmd) Synopsis() string {
	return "create a recurring transaction template"
}
func (*recurringCreateCmd) Usage() string {
	return `fin new-recurring -u <username> -name <name> -a <amount> -every <interval> [-t <income|expense>] [-start <date>] [-end <date>] [-profile <name>]

  Creates a template that materializes a transaction every <interval>,
  given as a number of days or one of daily, weekly, biweekly, monthly,
  starting at -start (today by default) until -end (forever by default).
  Due occurrences are written by 'fin run-recurring'.
`
}

func (c *recurringCreateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.name, "name", "", "Template name, e.g. Rent")
	f.StringVar(&c.txType, "t", "expense", "Transaction type: income or expense")
	f.StringVar(&c.amount, "a", "", "Amount, a positive decimal")
	f.StringVar(&c.interval, "every", "", "Interval between occurrences: days or daily, weekly, biweekly, monthly")
	f.StringVar(&c.start, "start", "", "First occurrence date (YYYY-MM-DD, default today)")
	f.StringVar(&c.end, "end", "", "Last possible occurrence date (YYYY-MM-DD)")
}

func (c *recurringCreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.name == "" || c.amount == "" || c.interval == "" {
		errf("Error: -u, -name, -a and -every are required\n")
		return subcommands.ExitUsageError
	}
	tt, err := finbook.ParseTxType(c.txType)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	interval, err := parseInterval(c.interval)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		errf("Error parsing amount %q: %v\n", c.amount, err)
		return subcommands.ExitUsageError
	}
	var start, end *finbook.Date
	if c.start != "" {
		d, err := finbook.ParseDate(c.start)
		if err != nil {
			errf("Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
		start = &d
	}
	if c.end != "" {
		d, err := finbook.ParseDate(c.end)
		if err != nil {
			errf("Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		end = &d
	}

	users, _, schedule := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := schedule.Create(c.username, p.ProfileID, c.name, tt, amount, interval, start, end)
	if err != nil {
		errf("Error creating recurring transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created recurring %q (%s), next occurrence on %s, id %s\n", r.Name, r.Type, r.NextDate, r.RecurringID)
	return subcommands.ExitSuccess
}
