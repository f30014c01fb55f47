package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

// inspectCmd holds the flags for the 'inspect' subcommand.
type inspectCmd struct {
	store string
}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "query a JSON store with a JSONPath expression" }
func (*inspectCmd) Usage() string {
	return `fin inspect [-store users|recurring] <jsonpath>

  Evaluates a JSONPath expression against a raw store file, for
  debugging and scripting.

Usage Examples:
# All usernames.
$ fin inspect '$[*].name'

# Next occurrence dates of every recurring template.
$ fin inspect -store recurring '$[*].next_date'
`
}

func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.store, "store", "users", "Store to query: users or recurring")
}

func (c *inspectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		errf("Error: exactly one JSONPath expression is required\n")
		return subcommands.ExitUsageError
	}

	cfg := appConfig()
	var path string
	switch c.store {
	case "users":
		path = cfg.UsersFile
	case "recurring":
		path = cfg.RecurringFile
	default:
		errf("Error: unknown store %q\n", c.store)
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(path)
	if err != nil {
		errf("Error reading %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		errf("Error parsing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	result, err := jsonpath.Get(f.Arg(0), doc)
	if err != nil {
		errf("Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		errf("Error formatting result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
