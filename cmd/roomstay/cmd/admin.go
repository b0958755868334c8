package cmd

import (
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations on users and rooms",
	Long: `Administrative operations on users and rooms. The backend enforces
the ADMIN role on these endpoints; a regular account will get a domain error.`,
}

func init() {
	rootCmd.AddCommand(adminCmd)
}
