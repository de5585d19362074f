package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"coral_cove/internal/domain"
)

func TestStore_Lookups(t *testing.T) {
	ctx := context.Background()
	s := NewDefault(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 30)

	r, err := s.GetRoomBySlug(ctx, "oceanfront-suite")
	if err != nil {
		t.Fatalf("slug lookup: %v", err)
	}
	if r.ID != "room-004" {
		t.Fatalf("want room-004, got %s", r.ID)
	}
	if _, err := s.GetRoom(ctx, "room-999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	id := "room-001"
	entries, err := s.ListAvailability(ctx, "2025-06-01", "2025-06-04", &id)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Fatalf("inclusive window should give 4 entries, got %d", len(entries))
	}
	all, _ := s.ListAvailability(ctx, "2025-06-01", "2025-06-01", nil)
	if len(all) != 6 {
		t.Fatalf("want one entry per room, got %d", len(all))
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := New(nil, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.CreateBooking(ctx, domain.Booking{ID: fmt.Sprintf("booking-%d", i), CreatedAt: time.Unix(int64(i), 0)})
		}(i)
	}
	wg.Wait()

	got, _ := s.ListBookings(ctx)
	if len(got) != 50 {
		t.Fatalf("want 50 bookings, got %d", len(got))
	}
	if got[0].ID != "booking-0" {
		t.Fatalf("bookings should be ordered by creation, first=%s", got[0].ID)
	}
}
