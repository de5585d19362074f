// Package memory is the default HotelRepository: the static catalog, a
// generated availability table and an append-only booking list held in process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"coral_cove/internal/catalog"
	"coral_cove/internal/domain"
)

type Store struct {
	rooms        []domain.Room
	amenities    []domain.Amenity
	availability []domain.AvailabilityEntry

	mu       sync.RWMutex
	bookings []domain.Booking
}

// New builds a store over fixed data. Slices are not copied; callers hand them over.
func New(rooms []domain.Room, amenities []domain.Amenity, availability []domain.AvailabilityEntry) *Store {
	return &Store{rooms: rooms, amenities: amenities, availability: availability}
}

// NewDefault serves the resort catalog with days of availability starting at start.
func NewDefault(start time.Time, days int) *Store {
	rooms := catalog.Rooms()
	return New(rooms, catalog.Amenities(), catalog.Generate(rooms, start, days))
}

func (s *Store) ListRooms(_ context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	return catalog.FilterRooms(s.rooms, q), nil
}

func (s *Store) GetRoom(_ context.Context, id string) (domain.Room, error) {
	if r, ok := catalog.RoomByID(s.rooms, id); ok {
		return r, nil
	}
	return domain.Room{}, domain.ErrRoomNotFound
}

func (s *Store) GetRoomBySlug(_ context.Context, slug string) (domain.Room, error) {
	if r, ok := catalog.RoomBySlug(s.rooms, slug); ok {
		return r, nil
	}
	return domain.Room{}, domain.ErrRoomNotFound
}

func (s *Store) ListAmenities(_ context.Context, ids []string) ([]domain.Amenity, error) {
	return catalog.SelectAmenities(s.amenities, ids), nil
}

func (s *Store) ListAvailability(_ context.Context, from, to string, roomID *string) ([]domain.AvailabilityEntry, error) {
	out := make([]domain.AvailabilityEntry, 0)
	for _, e := range s.availability {
		if e.Date < from || e.Date > to {
			continue
		}
		if roomID != nil && e.RoomID != *roomID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) ListBookings(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CreateBooking(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	return nil
}
