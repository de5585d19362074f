// Package catalog is the resort's static room and amenity catalog plus the
// deterministic availability table generated from it at startup.
package catalog

import (
	"sort"

	"coral_cove/internal/domain"
)

const Currency = "CLP"

func ord(n int) *int { return &n }

func img(id, url, alt string, primary bool) domain.RoomImage {
	return domain.RoomImage{ID: id, URL: "https://images.unsplash.com/" + url + "?w=800&q=80", Alt: alt, IsPrimary: primary}
}

var baseAmenities = []string{"wifi", "ac", "tv", "minibar", "safe", "coffee-maker"}

func withBase(extra ...string) []string {
	out := make([]string, 0, len(baseAmenities)+len(extra))
	out = append(out, baseAmenities...)
	return append(out, extra...)
}

// Rooms returns a fresh copy of the catalog.
func Rooms() []domain.Room {
	return []domain.Room{
		{
			ID: "room-001", Slug: "standard-garden-view", Type: domain.RoomStandard,
			Name:             "Standard Garden View",
			ShortDescription: "Comfortable retreat with serene garden views",
			FullDescription:  "A quiet room overlooking the tropical gardens, sized for couples or solo travelers who want comfort without fuss.",
			PricePerNight:    165000, Currency: Currency,
			Images: []domain.RoomImage{
				img("img-001-1", "photo-1590490360182-c33d57733427", "Standard room main view", true),
				img("img-001-2", "photo-1584132967334-10e028bd69f7", "Standard room bathroom", false),
				img("img-001-3", "photo-1582719478250-c89cae4dc85b", "Garden view from balcony", false),
			},
			AmenityIDs: withBase(),
			Capacity:   domain.Capacity{MaxGuests: 2, Beds: []domain.Bed{{Type: "queen", Count: 1}}},
			Size:       domain.RoomSize{Value: 320, Unit: "sqft"},
			FloorLevel: "Ground - 3rd", ViewType: "garden", IsAvailable: true, FeaturedOrder: ord(6),
		},
		{
			ID: "room-002", Slug: "ocean-view-deluxe", Type: domain.RoomOceanView,
			Name:             "Ocean View Deluxe",
			ShortDescription: "Wake up to breathtaking ocean panoramas",
			FullDescription:  "Floor-to-ceiling windows frame the sea and a private balcony catches the sunrise over the water.",
			PricePerNight:    255000, Currency: Currency,
			Images: []domain.RoomImage{
				img("img-002-1", "photo-1566073771259-6a8506099945", "Ocean view room panorama", true),
				img("img-002-2", "photo-1602002418082-a4443e081dd1", "Private balcony", false),
				img("img-002-3", "photo-1578683010236-d716f9a3f461", "Bedroom detail", false),
				img("img-002-4", "photo-1552321554-5fefe8c9ef14", "En-suite bathroom", false),
			},
			AmenityIDs: withBase("balcony", "ocean-view", "bathrobes"),
			Capacity:   domain.Capacity{MaxGuests: 2, Beds: []domain.Bed{{Type: "king", Count: 1}}},
			Size:       domain.RoomSize{Value: 420, Unit: "sqft"},
			FloorLevel: "4th - 8th", ViewType: "ocean", IsAvailable: true, FeaturedOrder: ord(2),
		},
		{
			ID: "room-003", Slug: "superior-pool-access", Type: domain.RoomSuperior,
			Name:             "Superior Pool Access",
			ShortDescription: "Direct access to our infinity pool paradise",
			FullDescription:  "Step from the private terrace with sun loungers straight into the infinity pool.",
			PricePerNight:    305000, Currency: Currency,
			Images: []domain.RoomImage{
				img("img-003-1", "photo-1571896349842-33c89424de2d", "Pool access room exterior", true),
				img("img-003-2", "photo-1590490360182-c33d57733427", "Room interior", false),
				img("img-003-3", "photo-1540541338287-41700207dee6", "Private terrace", false),
			},
			AmenityIDs: withBase("pool-access", "terrace", "bathrobes", "sun-loungers"),
			Capacity:   domain.Capacity{MaxGuests: 3, Beds: []domain.Bed{{Type: "king", Count: 1}, {Type: "sofa-bed", Count: 1}}},
			Size:       domain.RoomSize{Value: 480, Unit: "sqft"},
			FloorLevel: "Ground", ViewType: "pool", IsAvailable: true, FeaturedOrder: ord(3),
		},
		{
			ID: "room-004", Slug: "oceanfront-suite", Type: domain.RoomSuite,
			Name:             "Oceanfront Suite",
			ShortDescription: "Spacious suite with separate living and panoramic views",
			FullDescription:  "Separate living, dining and sleeping areas all face the ocean, wrapped by a balcony with several vantage points.",
			PricePerNight:    485000, Currency: Currency,
			Images: []domain.RoomImage{
				img("img-004-1", "photo-1582719508461-905c673771fd", "Suite living area", true),
				img("img-004-2", "photo-1631049307264-da0ec9d70304", "Master bedroom", false),
				img("img-004-3", "photo-1520250497591-112f2f40a3f4", "Wrap-around balcony", false),
				img("img-004-4", "photo-1600566752355-35792bedcfea", "Marble bathroom", false),
				img("img-004-5", "photo-1560448204-e02f11c3d0e2", "Dining area", false),
			},
			AmenityIDs: withBase("balcony", "ocean-view", "bathrobes", "living-room", "dining-area", "jacuzzi-tub", "premium-toiletries"),
			Capacity:   domain.Capacity{MaxGuests: 4, Beds: []domain.Bed{{Type: "king", Count: 1}, {Type: "sofa-bed", Count: 1}}},
			Size:       domain.RoomSize{Value: 850, Unit: "sqft"},
			FloorLevel: "6th - 10th", ViewType: "ocean", IsAvailable: true, FeaturedOrder: ord(4),
		},
		{
			ID: "room-005", Slug: "family-beach-suite", Type: domain.RoomFamilySuite,
			Name:             "Family Beach Suite",
			ShortDescription: "Ideal for families with connecting rooms and beach access",
			FullDescription:  "A king master bedroom, a connecting kids' room with twin beds and a shared living space a few steps from the sand.",
			PricePerNight:    555000, Currency: Currency,
			Images: []domain.RoomImage{
				img("img-005-1", "photo-1596394516093-501ba68a0ba6", "Family suite overview", true),
				img("img-005-2", "photo-1595576508898-0ad5c879a061", "Kids room", false),
				img("img-005-3", "photo-1616594039964-ae9021a400a0", "Master bedroom", false),
				img("img-005-4", "photo-1507525428034-b723cf961d3e", "Beach access path", false),
			},
			AmenityIDs: withBase("beach-access", "connecting-rooms", "kids-amenities", "game-console", "bathrobes", "two-bathrooms"),
			Capacity: domain.Capacity{MaxGuests: 6, Beds: []domain.Bed{
				{Type: "king", Count: 1}, {Type: "twin", Count: 2}, {Type: "sofa-bed", Count: 1},
			}},
			Size:       domain.RoomSize{Value: 1100, Unit: "sqft"},
			FloorLevel: "Ground - 2nd", ViewType: "ocean", IsAvailable: true, FeaturedOrder: ord(5),
		},
		{
			ID: "room-006", Slug: "presidential-penthouse", Type: domain.RoomPresidential,
			Name:             "Presidential Penthouse",
			ShortDescription: "Ultimate luxury with private rooftop and butler service",
			FullDescription:  "The whole top floor: three bedrooms, a gourmet kitchen, a private cinema and a rooftop terrace with its own pool, with a butler on call.",
			PricePerNight:    2200000, Currency: Currency,
			Images: []domain.RoomImage{
				img("img-006-1", "photo-1631049552057-403cdb8f0658", "Penthouse living room", true),
				img("img-006-2", "photo-1572331165267-854da2b021aa", "Rooftop infinity pool", false),
				img("img-006-3", "photo-1618773928121-c32242e63f39", "Master suite", false),
				img("img-006-4", "photo-1489599849927-2ee91cede3ba", "Private cinema", false),
				img("img-006-5", "photo-1556909114-f6e7ad7d3136", "Gourmet kitchen", false),
				img("img-006-6", "photo-1615066390971-03e4e1c36ddf", "Formal dining room", false),
			},
			AmenityIDs: withBase("balcony", "ocean-view", "bathrobes", "living-room", "dining-area", "jacuzzi-tub",
				"premium-toiletries", "butler-service", "private-pool", "private-cinema", "gourmet-kitchen",
				"rooftop-terrace", "outdoor-kitchen"),
			Capacity: domain.Capacity{MaxGuests: 8, Beds: []domain.Bed{
				{Type: "king", Count: 2}, {Type: "queen", Count: 1}, {Type: "sofa-bed", Count: 1},
			}},
			Size:       domain.RoomSize{Value: 3500, Unit: "sqft"},
			FloorLevel: "Penthouse", ViewType: "ocean", IsAvailable: true, FeaturedOrder: ord(1),
		},
	}
}

// FilterRooms applies the catalog query. Featured rooms come back ordered by FeaturedOrder.
func FilterRooms(rooms []domain.Room, q domain.RoomsQuery) []domain.Room {
	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if q.Featured && r.FeaturedOrder == nil {
			continue
		}
		if q.Type != "" && q.Type != "all" && string(r.Type) != q.Type {
			continue
		}
		out = append(out, r)
	}
	if q.Featured {
		sort.SliceStable(out, func(i, j int) bool { return *out[i].FeaturedOrder < *out[j].FeaturedOrder })
	}
	return out
}
