// Package cmd implements the CLI application to manage the finance book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&registerCmd{}, "users")
	c.Register(&profilesCmd{}, "users")
	c.Register(&profileCreateCmd{}, "users")
	c.Register(&profileDeleteCmd{}, "users")

	c.Register(&addCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&searchCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")

	c.Register(&recurringCmd{}, "recurring")
	c.Register(&recurringCreateCmd{}, "recurring")
	c.Register(&recurringStatusCmd{pause: true}, "recurring")
	c.Register(&recurringStatusCmd{pause: false}, "recurring")
	c.Register(&recurringEditCmd{}, "recurring")
	c.Register(&recurringDeleteCmd{}, "recurring")
	c.Register(&recurringRunCmd{}, "recurring")
	c.Register(&recurringHistoryCmd{}, "recurring")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&healthCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&backupCmd{}, "data")
	c.Register(&inspectCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "Path to the data folder (overrides FINBOOK_DATA_DIR)")

// appConfig resolves the configuration from the environment, with the
// -data-dir flag taking precedence over everything.
func appConfig() finbook.Config {
	if *dataDir != "" {
		return finbook.DefaultConfig(*dataDir)
	}
	return finbook.LoadConfig()
}

// openStores opens every store over the shared ledger.
func openStores() (*finbook.UserStore, *finbook.LedgerStore, *finbook.ScheduleStore) {
	cfg := appConfig()
	ledger := cfg.Ledger()
	return cfg.Users(ledger), ledger, cfg.Schedule(ledger)
}

// resolveProfile finds the user and one of their profiles by name.
// An empty profile name selects the user's first (default) profile.
func resolveProfile(users *finbook.UserStore, username, profileName string) (finbook.User, finbook.Profile, error) {
	u, err := users.Find(username)
	if err != nil {
		return finbook.User{}, finbook.Profile{}, fmt.Errorf("unknown user %q: %w", username, err)
	}
	if len(u.Profiles) == 0 {
		// Impossible through the store API, but a hand-edited users
		// file can get here.
		return finbook.User{}, finbook.Profile{}, fmt.Errorf("user %q has no profiles", username)
	}
	if profileName == "" {
		return u, u.Profiles[0], nil
	}
	p, ok := u.ProfileByName(profileName)
	if !ok {
		return finbook.User{}, finbook.Profile{}, fmt.Errorf("user %q has no profile named %q", username, profileName)
	}
	return u, p, nil
}

// errf reports a command error on stderr.
func errf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
