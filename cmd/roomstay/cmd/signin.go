package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var signinPassword string

var signinCmd = &cobra.Command{
	Use:   "signin <email>",
	Short: "Sign in and persist the session credential",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		password := signinPassword
		if password == "" {
			password, err = promptPassword()
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
		}

		if err := a.sessions.SignIn(cmd.Context(), args[0], password); err != nil {
			if msg := a.sessions.LastError(); msg != "" {
				return errors.New(msg)
			}
			return err
		}

		user, _ := a.sessions.CurrentUser()
		fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
		return nil
	},
}

// promptPassword reads the password without echoing when stdin is a
// terminal. Piped input falls back to a plain line read.
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return readLine(os.Stdin)
}

// readLine reads one line, tolerating a missing trailing newline.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func init() {
	rootCmd.AddCommand(signinCmd)
	signinCmd.Flags().StringVar(&signinPassword, "password", "", "Password (prompted when omitted)")
}
