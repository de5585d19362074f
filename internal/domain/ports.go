package domain

import "context"

// HotelRepository is the storage boundary for catalog, availability and bookings.
type HotelRepository interface {
	// Read paths
	ListRooms(ctx context.Context, q RoomsQuery) ([]Room, error)
	GetRoom(ctx context.Context, id string) (Room, error)
	GetRoomBySlug(ctx context.Context, slug string) (Room, error)
	ListAmenities(ctx context.Context, ids []string) ([]Amenity, error)
	// ListAvailability returns entries with from <= date <= to, optionally for one room.
	ListAvailability(ctx context.Context, from, to string, roomID *string) ([]AvailabilityEntry, error)
	ListBookings(ctx context.Context) ([]Booking, error)

	// Write paths
	CreateBooking(ctx context.Context, b Booking) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type PaymentProvider interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLink, error)
	GetWallets(ctx context.Context) ([]Wallet, error)
}

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b Booking, room Room)
}

// CatalogWriter loads the static catalog into a store.
type CatalogWriter interface {
	UpsertRoom(ctx context.Context, r Room) error
	UpsertAmenity(ctx context.Context, a Amenity) error
	UpsertAvailability(ctx context.Context, es []AvailabilityEntry) error
}
