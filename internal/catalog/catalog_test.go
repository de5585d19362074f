package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coral_cove/internal/domain"
)

func june(day int) time.Time { return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC) }

func TestRooms_CatalogShape(t *testing.T) {
	rooms := Rooms()
	require.Len(t, rooms, 6)

	known := map[string]bool{}
	for _, a := range Amenities() {
		known[a.ID] = true
	}
	for _, r := range rooms {
		assert.Equal(t, Currency, r.Currency, r.ID)
		assert.NotEmpty(t, r.Images, r.ID)
		assert.True(t, r.Images[0].IsPrimary, r.ID)
		for _, id := range r.AmenityIDs {
			assert.True(t, known[id], "room %s references unknown amenity %s", r.ID, id)
		}
	}
}

func TestFilterRooms(t *testing.T) {
	rooms := Rooms()

	featured := FilterRooms(rooms, domain.RoomsQuery{Featured: true})
	require.Len(t, featured, 6)
	assert.Equal(t, "presidential-penthouse", featured[0].Slug)
	assert.Equal(t, "standard-garden-view", featured[5].Slug)

	suites := FilterRooms(rooms, domain.RoomsQuery{Type: "suite"})
	require.Len(t, suites, 1)
	assert.Equal(t, "room-004", suites[0].ID)

	assert.Len(t, FilterRooms(rooms, domain.RoomsQuery{Type: "all"}), 6)
	assert.Empty(t, FilterRooms(rooms, domain.RoomsQuery{Type: "igloo"}))
}

func TestSelectAmenities(t *testing.T) {
	got := SelectAmenities(Amenities(), []string{"tv", "nope", "wifi"})
	require.Len(t, got, 2)
	assert.Equal(t, "tv", got[0].ID)
	assert.Equal(t, "wifi", got[1].ID)

	assert.Len(t, SelectAmenities(Amenities(), nil), 27)
	assert.Len(t, GroupAmenities(Amenities())["bathroom"], 3)
}

func TestGenerate_Deterministic(t *testing.T) {
	rooms := Rooms()[:1]
	entries := Generate(rooms, june(1).Add(15*time.Hour), 10)
	require.Len(t, entries, 10)

	first := entries[0]
	assert.Equal(t, "2025-06-01", first.Date)
	assert.True(t, first.IsAvailable)
	require.NotNil(t, first.PriceModifier)
	assert.Equal(t, 1.15, *first.PriceModifier) // Sunday

	thu := entries[4]
	assert.Equal(t, "2025-06-05", thu.Date)
	assert.False(t, thu.IsAvailable)
	assert.Equal(t, 1.0, *thu.PriceModifier)

	assert.Equal(t, entries, Generate(rooms, june(1), 10))
}

func TestRoomAvailableForStay(t *testing.T) {
	entries := Generate(Rooms()[:1], june(1), 10)

	cases := []struct {
		name          string
		in, out       string
		wantAvailable bool
	}{
		{"all nights free", "2025-06-01", "2025-06-04", true},
		{"one blocked night", "2025-06-03", "2025-06-06", false},
		{"checkout on blocked day", "2025-06-04", "2025-06-05", true},
		{"zero nights", "2025-06-02", "2025-06-02", false},
		{"outside generated window", "2025-06-09", "2025-06-12", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantAvailable, RoomAvailableForStay("room-001", tc.in, tc.out, entries))
		})
	}
}

func TestAvailableRoomIDs_ExcludesRoomWithOneBlockedDay(t *testing.T) {
	rooms := Rooms()[:2]
	entries := Generate(rooms, june(1), 10)
	for i := range entries {
		if entries[i].RoomID == "room-002" && entries[i].Date == "2025-06-02" {
			entries[i].IsAvailable = false
		}
	}
	assert.Equal(t, []string{"room-001"}, AvailableRoomIDs(rooms, "2025-06-01", "2025-06-04", entries))
}
