package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"coral_cove/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	rooms    []domain.Room
	entries  []domain.AvailabilityEntry
	bookings []domain.Booking

	roomCalls int
	createErr error
}

func (f *fakeRepo) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	f.roomCalls++
	return append([]domain.Room(nil), f.rooms...), nil
}
func (f *fakeRepo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	f.roomCalls++
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrRoomNotFound
}
func (f *fakeRepo) GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error) {
	for _, r := range f.rooms {
		if r.Slug == slug {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrRoomNotFound
}
func (f *fakeRepo) ListAmenities(ctx context.Context, ids []string) ([]domain.Amenity, error) {
	return nil, nil
}
func (f *fakeRepo) ListAvailability(ctx context.Context, from, to string, roomID *string) ([]domain.AvailabilityEntry, error) {
	var out []domain.AvailabilityEntry
	for _, e := range f.entries {
		if e.Date >= from && e.Date <= to && (roomID == nil || *roomID == e.RoomID) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeRepo) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return f.bookings, nil
}
func (f *fakeRepo) CreateBooking(ctx context.Context, b domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings = append(f.bookings, b)
	return nil
}

// fakeCache keeps JSON like the Redis adapter does, so cached values never alias repo data.
type fakeCache struct {
	store map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(v, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	c.store[key] = b
	return err
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	done chan struct{}
	got  []domain.Booking
}

func newFakeNotifier() *fakeNotifier { return &fakeNotifier{done: make(chan struct{}, 8)} }

func (n *fakeNotifier) NotifyBookingCreated(ctx context.Context, b domain.Booking, room domain.Room) {
	n.mu.Lock()
	n.got = append(n.got, b)
	n.mu.Unlock()
	n.done <- struct{}{}
}

type fakeProvider struct {
	link    domain.PaymentLink
	wallets []domain.Wallet
	err     error
	calls   int
	lastReq domain.PaymentLinkRequest
}

func (p *fakeProvider) CreatePaymentLink(ctx context.Context, req domain.PaymentLinkRequest) (domain.PaymentLink, error) {
	p.calls++
	p.lastReq = req
	return p.link, p.err
}
func (p *fakeProvider) GetWallets(ctx context.Context) ([]domain.Wallet, error) {
	p.calls++
	return p.wallets, p.err
}

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }
