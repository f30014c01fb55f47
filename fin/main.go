package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finbook/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Running
// under the completion environment variables, Complete prints the
// candidates and exits.
func completion() {
	profileFlags := map[string]complete.Predictor{
		"u":       predict.Something,
		"profile": predict.Something,
	}
	completer := &complete.Command{
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"register":          {Flags: map[string]complete.Predictor{"u": predict.Something, "currency": predict.Something}},
			"profiles":          {Flags: map[string]complete.Predictor{"u": predict.Something}},
			"new-profile":       {Flags: map[string]complete.Predictor{"u": predict.Something, "name": predict.Something}},
			"delete-profile":    {Flags: map[string]complete.Predictor{"u": predict.Something, "name": predict.Something}},
			"add":               {Flags: map[string]complete.Predictor{"u": predict.Something, "t": predict.Set{"income", "expense"}}},
			"tx":                {Flags: profileFlags},
			"search":            {Flags: profileFlags},
			"edit":              {Flags: map[string]complete.Predictor{"u": predict.Something, "id": predict.Something}},
			"delete":            {Flags: map[string]complete.Predictor{"u": predict.Something, "id": predict.Something}},
			"recurring":         {Flags: profileFlags},
			"new-recurring":     {Flags: map[string]complete.Predictor{"u": predict.Something, "name": predict.Something, "every": predict.Set{"daily", "weekly", "biweekly", "monthly"}}},
			"pause-recurring":   {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"resume-recurring":  {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"edit-recurring":    {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"delete-recurring":  {Flags: map[string]complete.Predictor{"u": predict.Something, "id": predict.Something}},
			"run-recurring":     {},
			"recurring-history": {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"summary":           {Flags: profileFlags},
			"monthly":           {Flags: profileFlags},
			"health":            {Flags: profileFlags},
			"export":            {Flags: map[string]complete.Predictor{"u": predict.Something, "o": predict.Files("*.csv")}},
			"import":            {Flags: map[string]complete.Predictor{"u": predict.Something, "i": predict.Files("*.csv")}},
			"backup":            {},
			"inspect":           {Flags: map[string]complete.Predictor{"store": predict.Set{"users", "recurring"}}},
			"topic":             {},
		},
	}
	completer.Complete(path.Base(os.Args[0]))
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	cmd.Housekeeping()
	os.Exit(int(commander.Execute(context.Background())))
}
