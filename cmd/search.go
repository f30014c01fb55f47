package cmd

import (
	"context"
	"flag"

	"github.com/finbook/finbook"
	"github.com/finbook/finbook/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// searchCmd holds the flags for the 'search' subcommand.
type searchCmd struct {
	username  string
	profile   string
	keyword   string
	from      string
	to        string
	min       string
	max       string
	txType    string
	sortBy    string
	sortOrder string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search transactions with filters and sorting" }
func (*searchCmd) Usage() string {
	return `fin search -u <username> [-k <keyword>] [-from <date>] [-to <date>] [-min <amount>] [-max <amount>] [-t <type>] [-sort date|amount] [-order asc|desc]

  Searches one profile's transactions. All filters are optional and
  combine with AND. The keyword matches category and description,
  case-insensitively.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username")
	f.StringVar(&c.profile, "profile", "", "Profile name (defaults to the user's first profile)")
	f.StringVar(&c.keyword, "k", "", "Keyword matched in category or description")
	f.StringVar(&c.from, "from", "", "Earliest date, inclusive (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "Latest date, inclusive (YYYY-MM-DD)")
	f.StringVar(&c.min, "min", "", "Minimum amount, inclusive")
	f.StringVar(&c.max, "max", "", "Maximum amount, inclusive")
	f.StringVar(&c.txType, "t", "", "Only this transaction type: income or expense")
	f.StringVar(&c.sortBy, "sort", "", "Sort key: date or amount (default: ledger order)")
	f.StringVar(&c.sortOrder, "order", "asc", "Sort order: asc or desc")
}

func (c *searchCmd) filter() (finbook.SearchFilter, error) {
	filter := finbook.SearchFilter{
		Keyword:   c.keyword,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
	}
	if c.from != "" {
		d, err := finbook.ParseDate(c.from)
		if err != nil {
			return filter, err
		}
		filter.From = &d
	}
	if c.to != "" {
		d, err := finbook.ParseDate(c.to)
		if err != nil {
			return filter, err
		}
		filter.To = &d
	}
	if c.min != "" {
		v, err := decimal.NewFromString(c.min)
		if err != nil {
			return filter, err
		}
		filter.MinAmount = &v
	}
	if c.max != "" {
		v, err := decimal.NewFromString(c.max)
		if err != nil {
			return filter, err
		}
		filter.MaxAmount = &v
	}
	if c.txType != "" {
		tt, err := finbook.ParseTxType(c.txType)
		if err != nil {
			return filter, err
		}
		filter.Type = tt
	}
	return filter, nil
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		errf("Error: -u is required\n")
		return subcommands.ExitUsageError
	}
	filter, err := c.filter()
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	users, ledger, _ := openStores()
	_, p, err := resolveProfile(users, c.username, c.profile)
	if err != nil {
		errf("Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rows, err := finbook.Search(ledger, p.ProfileID, filter)
	if err != nil {
		errf("Error searching ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TransactionsMarkdown("Search Results", rows, p.Currency))
	return subcommands.ExitSuccess
}
