package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is the CLI release version, overridden at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "roomstay",
	Short: "RoomStay is a terminal client for the room booking marketplace",
	Long: `A terminal client for the room booking marketplace: browse locations
and rooms, reserve stays, leave ratings, and manage your profile. Credentials
are kept sealed on disk between runs.`,
	SilenceUsage: true,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
