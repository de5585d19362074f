// Command checkout books a stay against a running API by driving the same
// four-step wizard the web checkout uses.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"coral_cove/internal/adapters/apiclient"
	"coral_cove/internal/adapters/observability"
	"coral_cove/internal/checkout"
	"coral_cove/internal/dates"
	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
)

func main() {
	var (
		api      = flag.String("api", "http://localhost:8080", "booking API server root (paths are /api/...)")
		checkIn  = flag.String("check-in", "", "check-in date (YYYY-MM-DD)")
		checkOut = flag.String("check-out", "", "check-out date (YYYY-MM-DD)")
		roomID   = flag.String("room", "", "room id; first available room when empty")
		guests   = flag.Int("guests", 2, "number of guests")
		first    = flag.String("first-name", "", "guest first name")
		last     = flag.String("last-name", "", "guest last name")
		email    = flag.String("email", "", "guest email")
		phone    = flag.String("phone", "", "guest phone")
		country  = flag.String("country", "", "guest country")
		requests = flag.String("requests", "", "special requests")
		method   = flag.String("payment", string(domain.PaymentCreditCard), "payment method: credit-card|aloha-pay")
		currency = flag.String("pay-currency", "CLP", "payer currency for aloha-pay links")
	)
	flag.Parse()

	log.Logger = observability.NewLogger("dev", "checkout")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, *api, params(*checkIn, *checkOut, *roomID), *guests, domain.GuestInfo{
		FirstName:       *first,
		LastName:        *last,
		Email:           *email,
		Phone:           *phone,
		Country:         *country,
		SpecialRequests: optional(*requests),
	}, domain.PaymentMethod(*method), *currency); err != nil {
		log.Error().Err(err).Msg("checkout failed")
		os.Exit(1)
	}
}

func params(in, out, room string) url.Values {
	p := url.Values{}
	if in != "" && out != "" {
		p.Set(checkout.ParamCheckIn, in)
		p.Set(checkout.ParamCheckOut, out)
	}
	if room != "" {
		p.Set(checkout.ParamRoomID, room)
	}
	return p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func run(ctx context.Context, base string, p url.Values, guests int, guest domain.GuestInfo, method domain.PaymentMethod, currency string) error {
	client := apiclient.New(base)
	rooms, err := client.ListRooms(ctx, domain.RoomsQuery{})
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}

	s := checkout.New(client, rooms, p)
	if !s.CanProceed() {
		return fmt.Errorf("%w: -check-in and -check-out must describe at least one night", domain.ErrValidation)
	}
	s.Next()

	opts, err := s.LoadRoomStep(ctx)
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}
	if s.State().SelectedRoomID == nil {
		for _, o := range opts {
			if o.Available {
				s.SelectRoom(o.Room.ID)
				break
			}
		}
	}
	if !s.CanProceed() {
		return fmt.Errorf("%w: no room available for %s", domain.ErrUnavailable, dates.DisplayRange(p.Get(checkout.ParamCheckIn), p.Get(checkout.ParamCheckOut)))
	}
	s.SetGuests(guests)
	s.Next()

	s.SubmitGuestInfo(guest)
	s.SetPaymentMethod(method)

	b, err := s.Confirm(ctx)
	if err != nil {
		return err
	}
	room, _ := s.Wizard().SelectedRoom()
	fmt.Printf("Booking %s (%s)\n", b.ID, b.Status)
	fmt.Printf("  %s, %s\n", room.Name, dates.DisplayRange(b.CheckIn, b.CheckOut))
	fmt.Printf("  Total: %s\n", pricing.Format(b.TotalPrice))

	if method == domain.PaymentAlohaPay {
		link, err := s.CreatePaymentLink(ctx, currency)
		if err != nil {
			return fmt.Errorf("payment link: %w", err)
		}
		fmt.Printf("  Pay at: %s\n", link.URL)
	}
	return nil
}
