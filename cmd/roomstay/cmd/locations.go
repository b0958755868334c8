package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List all bookable locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		locations, err := a.api.ListLocations(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, genericLoadFailure))
		}

		for _, loc := range locations {
			fmt.Printf("%4d  %s, %s, %s\n", loc.ID, loc.Name, loc.Province, loc.Country)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
