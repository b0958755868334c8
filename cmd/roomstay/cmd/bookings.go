package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/client"
)

var bookingsCmd = &cobra.Command{
	Use:   "bookings",
	Short: "List your bookings",
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

		bookings, err := a.api.BookingsByUser(cmd.Context(), user.ID)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, genericLoadFailure))
		}
		if len(bookings) == 0 {
			fmt.Println("No bookings.")
			return nil
		}

		for _, b := range bookings {
			fmt.Printf("%4d  room %d  %s -> %s  %d guests\n",
				b.ID, b.RoomID, b.CheckIn, b.CheckOut, b.Guests)
		}
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <booking-id>",
	Short: "Cancel a booking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookingID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid booking id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := a.signedInUser(cmd.Context()); err != nil {
			return err
		}

		if err := a.api.DeleteBooking(cmd.Context(), bookingID); err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Hủy đặt phòng thất bại. Vui lòng thử lại."))
		}
		fmt.Printf("Cancelled booking %d\n", bookingID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookingsCmd)
	rootCmd.AddCommand(cancelCmd)
}
