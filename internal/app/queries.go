package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coral_cove/internal/catalog"
	"coral_cove/internal/dates"
	"coral_cove/internal/domain"
)

// QueryService serves the read side of the booking boundary. The cache is optional.
type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *QueryService) toCache(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

func (s *QueryService) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	key := fmt.Sprintf("rooms:%s:%t", q.Type, q.Featured)
	var out []domain.Room
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}
	rooms, err := s.repo.ListRooms(ctx, q)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, rooms)
	return rooms, nil
}

// GetRoom resolves an id first and falls back to a slug.
func (s *QueryService) GetRoom(ctx context.Context, idOrSlug string) (domain.Room, error) {
	key := "room:" + idOrSlug
	var rm domain.Room
	if s.fromCache(ctx, key, &rm) {
		return rm, nil
	}
	rm, err := s.repo.GetRoom(ctx, idOrSlug)
	if errors.Is(err, domain.ErrNotFound) {
		rm, err = s.repo.GetRoomBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return domain.Room{}, err
	}
	s.toCache(ctx, key, rm)
	return rm, nil
}

// RoomAvailability reports whether the room is free for every night of the
// stay. Entries span checkIn..checkOut inclusive so callers can render the checkout day.
func (s *QueryService) RoomAvailability(ctx context.Context, roomID, checkIn, checkOut string) (domain.RoomAvailability, error) {
	if err := validateWindow(checkIn, checkOut); err != nil {
		return domain.RoomAvailability{}, err
	}
	key := fmt.Sprintf("availability:%s:%s:%s", checkIn, checkOut, roomID)
	var out domain.RoomAvailability
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}
	entries, err := s.repo.ListAvailability(ctx, checkIn, checkOut, &roomID)
	if err != nil {
		return domain.RoomAvailability{}, err
	}
	out = domain.RoomAvailability{
		RoomID:      roomID,
		IsAvailable: catalog.RoomAvailableForStay(roomID, checkIn, checkOut, entries),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Entries:     entries,
	}
	s.toCache(ctx, key, out)
	return out, nil
}

// RangeAvailability lists every room free for the whole stay.
func (s *QueryService) RangeAvailability(ctx context.Context, checkIn, checkOut string) (domain.RangeAvailability, error) {
	if err := validateWindow(checkIn, checkOut); err != nil {
		return domain.RangeAvailability{}, err
	}
	key := fmt.Sprintf("availability:%s:%s:*", checkIn, checkOut)
	var out domain.RangeAvailability
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}
	rooms, err := s.repo.ListRooms(ctx, domain.RoomsQuery{})
	if err != nil {
		return domain.RangeAvailability{}, err
	}
	entries, err := s.repo.ListAvailability(ctx, checkIn, checkOut, nil)
	if err != nil {
		return domain.RangeAvailability{}, err
	}
	out = domain.RangeAvailability{
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		AvailableRoomIDs: catalog.AvailableRoomIDs(rooms, checkIn, checkOut, entries),
		Entries:          entries,
	}
	s.toCache(ctx, key, out)
	return out, nil
}

// Amenities returns the selected amenities in request order, or all of them when ids is nil.
func (s *QueryService) Amenities(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	key := "amenities:" + strings.Join(ids, ",")
	if ids == nil {
		key = "amenities:*"
	}
	var out []domain.Amenity
	if s.fromCache(ctx, key, &out) {
		return out, nil
	}
	out, err := s.repo.ListAmenities(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, out)
	return out, nil
}

func validateWindow(checkIn, checkOut string) error {
	v := domain.NewValidationError()
	switch {
	case checkIn == "" || checkOut == "":
		v.Add("dates", "checkIn and checkOut parameters are required")
	case !dates.IsISODate(checkIn) || !dates.IsISODate(checkOut):
		v.Add("dates", "Dates must be in YYYY-MM-DD format")
	}
	return v.OrNil()
}
