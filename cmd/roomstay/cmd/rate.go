package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/rating"
)

var (
	rateRoomID  int64
	rateStars   int
	rateComment string
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Leave a rating on a room",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := rating.Validate(rateStars, rateComment); err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		created, err := a.api.CreateRating(cmd.Context(), rating.Input(rateRoomID, rateStars, rateComment))
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Gửi đánh giá thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Rated room %d with %d stars (rating %d)\n", rateRoomID, created.Stars, created.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rateCmd)
	rateCmd.Flags().Int64Var(&rateRoomID, "room", 0, "Room id to rate")
	rateCmd.Flags().IntVar(&rateStars, "stars", 5, "Stars, 1 to 5")
	rateCmd.Flags().StringVar(&rateComment, "comment", "", "Comment, at least 10 characters")
	rateCmd.MarkFlagRequired("room")
	rateCmd.MarkFlagRequired("comment")
}
