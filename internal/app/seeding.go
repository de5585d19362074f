package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"coral_cove/internal/domain"
)

// availabilityChunk bounds the rows sent in one availability upsert.
const availabilityChunk = 500

type SeedService struct {
	store domain.CatalogWriter
	cache domain.Cache
}

func NewSeedService(w domain.CatalogWriter, cache domain.Cache) *SeedService {
	return &SeedService{store: w, cache: cache}
}

func (s *SeedService) SeedAmenities(ctx context.Context, list []domain.Amenity) error {
	for _, a := range list {
		if err := s.store.UpsertAmenity(ctx, a); err != nil {
			return fmt.Errorf("upsert amenity %s: %w", a.ID, err)
		}
	}
	return nil
}

// SeedRoom writes the room before its availability rows, then evicts the
// cached views that include it.
func (s *SeedService) SeedRoom(ctx context.Context, r domain.Room, entries []domain.AvailabilityEntry) error {
	if err := s.store.UpsertRoom(ctx, r); err != nil {
		return fmt.Errorf("upsert room %s: %w", r.ID, err)
	}

	var own []domain.AvailabilityEntry
	for _, e := range entries {
		if e.RoomID == r.ID {
			own = append(own, e)
		}
	}
	for start := 0; start < len(own); start += availabilityChunk {
		end := min(start+availabilityChunk, len(own))
		if err := s.store.UpsertAvailability(ctx, own[start:end]); err != nil {
			return fmt.Errorf("upsert availability %s: %w", r.ID, err)
		}
	}

	if s.cache != nil {
		s.invalidateRoom(ctx, r)
	}
	log.Debug().Str("room_id", r.ID).Int("days", len(own)).Msg("room seeded")
	return nil
}

func (s *SeedService) invalidateRoom(ctx context.Context, r domain.Room) {
	keys := []string{"room:" + r.ID, "room:" + r.Slug}
	for _, t := range []string{"", "all", string(r.Type)} {
		keys = append(keys, fmt.Sprintf("rooms:%s:%t", t, false), fmt.Sprintf("rooms:%s:%t", t, true))
	}
	for _, k := range keys {
		if err := s.cache.Del(ctx, k); err != nil {
			log.Warn().Err(err).Str("key", k).Msg("cache invalidation failed")
		}
	}
}
