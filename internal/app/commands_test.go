package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coral_cove/internal/app"
	"coral_cove/internal/domain"
)

func validInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		RoomID:   "room-x",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-04",
		GuestInfo: &domain.GuestInfo{
			FirstName: "Ana", LastName: "Rojas", Email: "ana@example.com",
			Phone: "+56 9 1234 5678", Country: "CL",
		},
		PaymentMethod: domain.PaymentAlohaPay,
	}
}

func bookingRepo() *fakeRepo {
	return &fakeRepo{
		rooms: []domain.Room{{ID: "room-x", Name: "Test Room", PricePerNight: 200000}},
		// every night carries the weekend surcharge; it must not reach the total
		entries: openEntries("room-x", "2025-06-01", 10, 1.15),
	}
}

func TestCreateBooking_Pending(t *testing.T) {
	repo := bookingRepo()
	notifier := newFakeNotifier()
	fixed := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	svc := app.NewBookingService(repo, notifier).WithClock(func() time.Time { return fixed })

	b, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(b.ID, "booking-"), b.ID)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.EqualValues(t, 600000, b.TotalPrice)
	assert.Equal(t, fixed, b.CreatedAt)
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, b, repo.bookings[0])

	select {
	case <-notifier.done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestCreateBooking_IDsAreUnique(t *testing.T) {
	svc := app.NewBookingService(bookingRepo(), nil)
	a, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	b, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestCreateBooking_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CreateBookingInput)
		want   error
	}{
		{"missing room", func(in *domain.CreateBookingInput) { in.RoomID = "" }, domain.ErrValidation},
		{"missing guest", func(in *domain.CreateBookingInput) { in.GuestInfo = nil }, domain.ErrValidation},
		{"bad email", func(in *domain.CreateBookingInput) { in.GuestInfo.Email = "not-an-email" }, domain.ErrValidation},
		{"bad date", func(in *domain.CreateBookingInput) { in.CheckIn = "June 1" }, domain.ErrValidation},
		{"reversed dates", func(in *domain.CreateBookingInput) { in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn }, domain.ErrValidation},
		{"bad method", func(in *domain.CreateBookingInput) { in.PaymentMethod = "cash" }, domain.ErrValidation},
		{"unknown room", func(in *domain.CreateBookingInput) { in.RoomID = "room-404" }, domain.ErrNotFound},
		{"beyond window", func(in *domain.CreateBookingInput) { in.CheckOut = "2025-06-20" }, domain.ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := bookingRepo()
			svc := app.NewBookingService(repo, nil)
			in := validInput()
			tc.mutate(&in)

			_, err := svc.CreateBooking(context.Background(), in)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestCreateBooking_UnavailableNightDoesNotAppend(t *testing.T) {
	repo := bookingRepo()
	repo.entries[2].IsAvailable = false // 2025-06-03
	svc := app.NewBookingService(repo, nil)

	_, err := svc.CreateBooking(context.Background(), validInput())
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Empty(t, repo.bookings)
}

func TestCreateBooking_ValidationListsFields(t *testing.T) {
	svc := app.NewBookingService(bookingRepo(), nil)
	_, err := svc.CreateBooking(context.Background(), domain.CreateBookingInput{})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	for _, f := range []string{"roomId", "checkIn", "checkOut", "guestInfo", "paymentMethod"} {
		assert.Contains(t, verr.Fields(), f)
	}
}

func TestCreateBooking_StoreFailure(t *testing.T) {
	repo := bookingRepo()
	repo.createErr = errBoom
	_, err := app.NewBookingService(repo, nil).CreateBooking(context.Background(), validInput())
	assert.ErrorIs(t, err, errBoom)
}
