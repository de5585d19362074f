//go:build integration || !unit

package integration

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coral_cove/internal/adapters/apiclient"
	httpserver "coral_cove/internal/adapters/http_server"
	"coral_cove/internal/app"
	"coral_cove/internal/catalog"
	"coral_cove/internal/checkout"
	"coral_cove/internal/domain"
	"coral_cove/internal/storage/memory"
	"coral_cove/internal/wizard"
)

type noopProvider struct{}

func (noopProvider) CreatePaymentLink(_ context.Context, req domain.PaymentLinkRequest) (domain.PaymentLink, error) {
	return domain.PaymentLink{ID: "pl_e2e", URL: "https://pay.example/pl_e2e"}, nil
}

func (noopProvider) GetWallets(context.Context) ([]domain.Wallet, error) { return nil, nil }

// stack serves a one-room catalog whose room is free 2025-06-01..2025-06-10.
func stack(t *testing.T) (*apiclient.Client, *memory.Store, []domain.Room) {
	t.Helper()
	rooms := []domain.Room{{
		ID:            "room-x",
		Slug:          "test-suite",
		Type:          domain.RoomSuite,
		Name:          "Test Suite",
		PricePerNight: 200000,
		Currency:      catalog.Currency,
		IsAvailable:   true,
	}}
	var entries []domain.AvailabilityEntry
	for d := 1; d <= 10; d++ {
		day := time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		entries = append(entries, domain.AvailabilityEntry{RoomID: "room-x", Date: day, IsAvailable: true})
	}
	store := memory.New(rooms, catalog.Amenities(), entries)

	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q: app.NewQueryService(store, nil, time.Minute),
		B: app.NewBookingService(store, nil),
		P: app.NewPaymentService(noopProvider{}, nil, time.Minute),
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return apiclient.New(ts.URL), store, rooms
}

func TestCheckout_EndToEnd(t *testing.T) {
	ctx := context.Background()
	client, store, rooms := stack(t)

	s := checkout.New(client, rooms, url.Values{})
	s.ChangeDates("2025-06-01", "2025-06-04")
	require.True(t, s.CanProceed())
	s.Next()

	opts, err := s.LoadRoomStep(ctx)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.True(t, opts[0].Available)

	s.SelectRoom("room-x")
	s.Next()
	s.SubmitGuestInfo(domain.GuestInfo{FirstName: "Ana", LastName: "Rojas", Email: "ana@example.com", Phone: "+56 9 1234 5678", Country: "CL"})
	assert.Equal(t, wizard.StepPayment, s.State().Step)
	s.SetPaymentMethod(domain.PaymentAlohaPay)

	b, err := s.Confirm(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(b.ID, "booking-"))
	assert.Equal(t, int64(600000), b.TotalPrice)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, checkout.ViewConfirmation, s.View())

	stored, err := store.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, b.ID, stored[0].ID)

	link, err := s.CreatePaymentLink(ctx, "CLP")
	require.NoError(t, err)
	assert.Equal(t, "pl_e2e", link.ID)

	s.StartAnother()
	assert.Equal(t, wizard.Initial(), s.State())
}

func TestCheckout_UnavailableStayIsRejected(t *testing.T) {
	ctx := context.Background()
	client, store, rooms := stack(t)

	s := checkout.New(client, rooms, url.Values{
		checkout.ParamCheckIn:  {"2025-06-08"},
		checkout.ParamCheckOut: {"2025-06-12"},
		checkout.ParamRoomID:   {"room-x"},
		checkout.ParamStep:     {"3"},
	})
	s.SubmitGuestInfo(domain.GuestInfo{FirstName: "Ana", LastName: "Rojas", Email: "ana@example.com", Phone: "1", Country: "CL"})
	s.SetPaymentMethod(domain.PaymentCreditCard)

	_, err := s.Confirm(ctx)
	require.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, checkout.ViewWizard, s.View())
	assert.Equal(t, wizard.StepPayment, s.State().Step)

	stored, err := store.ListBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
