package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coral_cove/internal/adapters/apiclient"
	httpserver "coral_cove/internal/adapters/http_server"
	"coral_cove/internal/app"
	"coral_cove/internal/catalog"
	"coral_cove/internal/domain"
	"coral_cove/internal/storage/memory"
)

func TestClient_DecodesEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/availability", r.URL.Path)
		assert.Equal(t, "2025-06-01", r.URL.Query().Get("checkIn"))
		_, _ = w.Write([]byte(`{"success":true,"data":{"checkIn":"2025-06-01","checkOut":"2025-06-04","availableRoomIds":["room-001"],"entries":[]},"message":"ok"}`))
	}))
	defer ts.Close()

	c := apiclient.NewWithHTTPClient(ts.URL, ts.Client())
	out, err := c.RangeAvailability(context.Background(), "2025-06-01", "2025-06-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"room-001"}, out.AvailableRoomIDs)
}

func TestClient_MapsStatuses(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrUnavailable},
		{http.StatusInternalServerError, domain.ErrUpstream},
	}
	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"success":false,"data":null,"message":"nope","errors":{"roomId":["is required"]}}`))
		}))

		c := apiclient.New(ts.URL)
		_, err := c.CreateBooking(context.Background(), domain.CreateBookingInput{})
		ts.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		var apiErr *apiclient.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "nope", apiErr.Message)
		assert.Contains(t, apiErr.Fields, "roomId")
	}
}

func TestClient_AgainstRouter(t *testing.T) {
	rooms := catalog.Rooms()
	store := memory.New(rooms, catalog.Amenities(), catalog.Generate(rooms, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 30))
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q: app.NewQueryService(store, nil, time.Minute),
		B: app.NewBookingService(store, nil),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	c := apiclient.New(ts.URL)
	list, err := c.ListRooms(context.Background(), domain.RoomsQuery{})
	require.NoError(t, err)
	assert.Len(t, list, 6)

	room, err := c.GetRoom(context.Background(), list[0].Slug)
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, room.ID)

	_, err = c.GetRoom(context.Background(), "no-such-room")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
