package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhle/roomstay/booking"
	"github.com/minhle/roomstay/client"
	"github.com/minhle/roomstay/view"
)

const dateLayout = "2006-01-02"

var (
	bookRoomID   int64
	bookCheckIn  string
	bookCheckOut string
	bookGuests   int
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Reserve a stay in a room",
	RunE: func(cmd *cobra.Command, args []string) error {
		checkIn, err := time.Parse(dateLayout, bookCheckIn)
		if err != nil {
			return fmt.Errorf("invalid --checkin date %q, want yyyy-mm-dd", bookCheckIn)
		}
		checkOut, err := time.Parse(dateLayout, bookCheckOut)
		if err != nil {
			return fmt.Errorf("invalid --checkout date %q, want yyyy-mm-dd", bookCheckOut)
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, err := a.signedInUser(cmd.Context())
		if err != nil {
			return err
		}

		room, err := a.api.GetRoom(cmd.Context(), bookRoomID)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, genericLoadFailure))
		}

		stay := booking.Stay{
			RoomID:    room.ID,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Guests:    bookGuests,
			MaxGuests: room.MaxGuests,
		}
		if err := booking.ValidateStay(stay); err != nil {
			return err
		}

		nights := booking.Nights(checkIn, checkOut)
		input := client.BookingInput{
			RoomID:   room.ID,
			CheckIn:  checkIn.Format(time.RFC3339),
			CheckOut: checkOut.Format(time.RFC3339),
			Guests:   bookGuests,
			UserID:   user.ID,
		}
		booked, err := a.api.CreateBooking(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("%s", client.UserMessage(err, "Đặt phòng thất bại. Vui lòng thử lại."))
		}

		quote := view.NewStayQuote(room.PricePerNight, nights)
		fmt.Printf("Booked %s (booking %d)\n", room.Name, booked.ID)
		fmt.Printf("%s = %s\n", quote.Breakdown, quote.Total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.Flags().Int64Var(&bookRoomID, "room", 0, "Room id to book")
	bookCmd.Flags().StringVar(&bookCheckIn, "checkin", "", "Check-in date (yyyy-mm-dd)")
	bookCmd.Flags().StringVar(&bookCheckOut, "checkout", "", "Check-out date (yyyy-mm-dd)")
	bookCmd.Flags().IntVar(&bookGuests, "guests", 1, "Number of guests")
	bookCmd.MarkFlagRequired("room")
	bookCmd.MarkFlagRequired("checkin")
	bookCmd.MarkFlagRequired("checkout")
}
