package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/session"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user and token diagnostics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.signedInUser(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("User:  %s (id %d)\n", user.Name, user.ID)
		fmt.Printf("Email: %s\n", user.Email)
		if user.Role != "" {
			fmt.Printf("Role:  %s\n", user.Role)
		}

		if token, ok := a.keeper.Token(); ok {
			info, err := session.InspectToken(token)
			if err == nil && !info.ExpiresAt.IsZero() {
				state := "valid"
				if info.Expired {
					state = "expired"
				}
				fmt.Printf("Token: %s, expires %s\n", state, info.ExpiresAt.Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
