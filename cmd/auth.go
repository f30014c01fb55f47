package cmd

import (
	"fmt"
	"os"

	"github.com/finbook/finbook"
	"golang.org/x/term"
)

// promptPassword reads a password from the terminal without echo.
// It falls back to a plain line read when stdin is not a terminal,
// so commands stay scriptable.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return line, nil
}

// confirmIdentity re-authenticates the user before a destructive
// operation. The password flag value is used when given, otherwise the
// password is prompted for.
func confirmIdentity(users *finbook.UserStore, username, password string) error {
	if password == "" {
		var err error
		password, err = promptPassword(fmt.Sprintf("Password for %s: ", username))
		if err != nil {
			return err
		}
	}
	if _, err := users.Authenticate(username, password); err != nil {
		return err
	}
	return nil
}
