package catalog

import (
	"time"

	"coral_cove/internal/dates"
	"coral_cove/internal/domain"
)

const (
	DefaultDays     = 90
	weekendModifier = 1.15
	weekdayModifier = 1.0
)

// Generate builds one entry per room per day for days consecutive days from
// start. The pattern is deterministic so every instance serves the same table.
func Generate(rooms []domain.Room, start time.Time, days int) []domain.AvailabilityEntry {
	start = dates.Today(start)
	out := make([]domain.AvailabilityEntry, 0, len(rooms)*days)
	for _, r := range rooms {
		for i := 0; i < days; i++ {
			day := start.AddDate(0, 0, i)
			out = append(out, Entry(r.ID, day))
		}
	}
	return out
}

// Entry computes the generated flag and modifier for one room on one day.
func Entry(roomID string, day time.Time) domain.AvailabilityEntry {
	var seed int
	if len(roomID) > 5 {
		seed = int(roomID[5])
	}
	hash := (seed + day.Day() + int(day.Month()) - 1) % 10

	mod := weekdayModifier
	switch day.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		mod = weekendModifier
	}
	return domain.AvailabilityEntry{
		RoomID:        roomID,
		Date:          dates.Format(day),
		IsAvailable:   hash < 8,
		PriceModifier: &mod,
	}
}

// RoomAvailableForStay reports whether every night in [checkIn, checkOut) has
// an entry marked available. A stay with no nights is never available.
func RoomAvailableForStay(roomID, checkIn, checkOut string, entries []domain.AvailabilityEntry) bool {
	nights := dates.StayNights(checkIn, checkOut)
	if len(nights) == 0 {
		return false
	}
	avail := make(map[string]bool, len(nights))
	for _, e := range entries {
		if e.RoomID == roomID {
			avail[e.Date] = e.IsAvailable
		}
	}
	for _, n := range nights {
		if ok, seen := avail[n]; !seen || !ok {
			return false
		}
	}
	return true
}

// AvailableRoomIDs keeps the catalog order of rooms available for the whole stay.
func AvailableRoomIDs(rooms []domain.Room, checkIn, checkOut string, entries []domain.AvailabilityEntry) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		if RoomAvailableForStay(r.ID, checkIn, checkOut, entries) {
			out = append(out, r.ID)
		}
	}
	return out
}

func RoomByID(rooms []domain.Room, id string) (domain.Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Room{}, false
}

func RoomBySlug(rooms []domain.Room, slug string) (domain.Room, bool) {
	for _, r := range rooms {
		if r.Slug == slug {
			return r, true
		}
	}
	return domain.Room{}, false
}
