package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Erase the persisted session credential",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		a.sessions.SignOut()
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signoutCmd)
}
