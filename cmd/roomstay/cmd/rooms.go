package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/rating"
	"github.com/minhle/roomstay/view"
)

var (
	roomsLocationID int64
	roomsKeyword    string
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms, optionally filtered by location or keyword",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		var rooms []client.Room
		if roomsLocationID > 0 {
			rooms, err = a.api.RoomsByLocation(cmd.Context(), roomsLocationID)
		} else {
			rooms, err = a.api.ListRooms(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, genericLoadFailure))
		}
		rooms = client.FilterRooms(rooms, roomsKeyword)

		for _, card := range view.Cards(rooms) {
			fmt.Printf("%4d  %s\n      %s · %s\n", card.RoomID, card.Title, card.GuestsLine, card.PriceLine)
		}
		return nil
	},
}

var roomCmd = &cobra.Command{
	Use:   "room <id>",
	Short: "Show a room's details and ratings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roomID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid room id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		room, err := a.api.GetRoom(cmd.Context(), roomID)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, genericLoadFailure))
		}

		fmt.Printf("%s\n", room.Name)
		fmt.Printf("%s · %d phòng ngủ · %d giường · %d phòng tắm\n",
			view.GuestsLine(room.MaxGuests), room.Bedrooms, room.Beds, room.Bathrooms)
		fmt.Printf("%s / đêm\n", view.FormatVND(room.PricePerNight))
		if room.Description != "" {
			fmt.Printf("\n%s\n", room.Description)
		}

		ratings, err := a.api.RatingsByRoom(cmd.Context(), roomID)
		if err != nil {
			// Detail already shown; ratings are best effort here.
			a.log.Debug("loading ratings failed", "room_id", roomID, "error", err)
			return nil
		}
		if avg, ok := rating.Average(ratings); ok {
			fmt.Printf("\n%.1f sao (%d đánh giá)\n", avg, len(ratings))
		}
		for _, r := range ratings {
			fmt.Printf("  [%d★] %s: %s\n", r.Stars, r.AuthorName, r.Comment)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(roomCmd)
	roomsCmd.Flags().Int64Var(&roomsLocationID, "location", 0, "Only rooms in this location id")
	roomsCmd.Flags().StringVar(&roomsKeyword, "keyword", "", "Only rooms whose name or description contains this")
}
