package app

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"coral_cove/internal/catalog"
	"coral_cove/internal/dates"
	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
)

type BookingService struct {
	repo     domain.HotelRepository
	notifier domain.BookingNotifier
	now      func() time.Time
	newID    func() string
}

// NewBookingService wires the write side. A nil notifier disables staff notifications.
func NewBookingService(r domain.HotelRepository, n domain.BookingNotifier) *BookingService {
	return &BookingService{
		repo:     r,
		notifier: n,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return "booking-" + uuid.NewString() },
	}
}

// WithClock replaces the creation timestamp source.
func (s *BookingService) WithClock(now func() time.Time) *BookingService {
	s.now = now
	return s
}

// CreateBooking validates the request, checks the room is free for every
// night of the stay and appends a pending booking. The stored total is
// pricePerNight * nights; weekend modifiers are display-only.
func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.Booking, error) {
	if err := validateBooking(in); err != nil {
		return domain.Booking{}, err
	}

	room, err := s.repo.GetRoom(ctx, in.RoomID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("check room %s: %w", in.RoomID, err)
	}

	entries, err := s.repo.ListAvailability(ctx, in.CheckIn, in.CheckOut, &in.RoomID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("check availability: %w", err)
	}
	if !catalog.RoomAvailableForStay(in.RoomID, in.CheckIn, in.CheckOut, entries) {
		return domain.Booking{}, domain.ErrUnavailable
	}

	b := domain.Booking{
		ID:            s.newID(),
		RoomID:        in.RoomID,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		GuestInfo:     *in.GuestInfo,
		PaymentMethod: in.PaymentMethod,
		TotalPrice:    pricing.Total(room.PricePerNight, dates.Nights(in.CheckIn, in.CheckOut)),
		Status:        domain.BookingStatusPending,
		CreatedAt:     s.now(),
	}
	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	log.Info().
		Str("booking_id", b.ID).
		Str("room_id", b.RoomID).
		Str("check_in", b.CheckIn).
		Str("check_out", b.CheckOut).
		Int64("total", b.TotalPrice).
		Msg("booking created")

	if s.notifier != nil {
		go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), b, room)
	}
	return b, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.ListBookings(ctx)
}

func validateBooking(in domain.CreateBookingInput) error {
	v := domain.NewValidationError()
	required := map[string]string{
		"roomId":        in.RoomID,
		"checkIn":       in.CheckIn,
		"checkOut":      in.CheckOut,
		"paymentMethod": string(in.PaymentMethod),
	}
	for field, val := range required {
		if strings.TrimSpace(val) == "" {
			v.Add(field, "is required")
		}
	}
	if in.GuestInfo == nil {
		v.Add("guestInfo", "is required")
	} else {
		validateGuest(v, *in.GuestInfo)
	}
	if !v.Empty() {
		return v
	}

	if !dates.IsISODate(in.CheckIn) || !dates.IsISODate(in.CheckOut) {
		v.Add("dates", "must be in YYYY-MM-DD format")
	} else if !dates.ValidRange(in.CheckIn, in.CheckOut) {
		v.Add("checkOut", "must be after checkIn")
	}
	if !in.PaymentMethod.Valid() {
		v.Add("paymentMethod", "must be aloha-pay or credit-card")
	}
	return v.OrNil()
}

func validateGuest(v *domain.ValidationError, g domain.GuestInfo) {
	for field, val := range map[string]string{
		"guestInfo.firstName": g.FirstName,
		"guestInfo.lastName":  g.LastName,
		"guestInfo.phone":     g.Phone,
		"guestInfo.country":   g.Country,
	} {
		if strings.TrimSpace(val) == "" {
			v.Add(field, "is required")
		}
	}
	if strings.TrimSpace(g.Email) == "" {
		v.Add("guestInfo.email", "is required")
	} else if _, err := mail.ParseAddress(g.Email); err != nil {
		v.Add("guestInfo.email", "is not a valid address")
	}
}
