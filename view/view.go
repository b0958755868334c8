// Package view turns domain values into the strings the UI surfaces
// show: Vietnamese currency, property-card summaries, stay quotes.
package view

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/minhle/roomstay/booking"
	"github.com/minhle/roomstay/client"
)

var vi = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount of đồng with Vietnamese digit grouping
// and no decimals: 500000 -> "500.000 ₫".
func FormatVND(amount int64) string {
	return vi.Sprintf("%v", number.Decimal(amount)) + " ₫"
}

// GuestsLine renders a guest capacity: 2 -> "2 khách".
func GuestsLine(n int) string {
	return fmt.Sprintf("%d khách", n)
}

// Card is a property summary as the listings grid shows it.
type Card struct {
	RoomID     int64
	Title      string
	GuestsLine string
	PriceLine  string
	Image      string
}

// NewCard builds the card summary for a room.
func NewCard(room client.Room) Card {
	return Card{
		RoomID:     room.ID,
		Title:      room.Name,
		GuestsLine: GuestsLine(room.MaxGuests),
		PriceLine:  FormatVND(room.PricePerNight) + " / đêm",
		Image:      room.Image,
	}
}

// Cards builds card summaries for a listing slice, preserving order.
func Cards(rooms []client.Room) []Card {
	cards := make([]Card, 0, len(rooms))
	for _, room := range rooms {
		cards = append(cards, NewCard(room))
	}
	return cards
}

// StayQuote is the checkout summary for a prospective stay.
type StayQuote struct {
	Breakdown string
	Total     string
}

// NewStayQuote renders the price breakdown shown before booking:
// "500.000 ₫ x 2 đêm" and the total.
func NewStayQuote(pricePerNight int64, nights int) StayQuote {
	return StayQuote{
		Breakdown: fmt.Sprintf("%s x %d đêm", FormatVND(pricePerNight), nights),
		Total:     FormatVND(booking.Quote(pricePerNight, nights)),
	}
}
