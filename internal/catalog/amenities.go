package catalog

import "coral_cove/internal/domain"

func Amenities() []domain.Amenity {
	return []domain.Amenity{
		{ID: "wifi", Name: "High-Speed WiFi", Icon: "Wifi", Category: "connectivity"},
		{ID: "tv", Name: "Smart TV", Icon: "Tv", Category: "entertainment"},
		{ID: "ac", Name: "Air Conditioning", Icon: "Snowflake", Category: "comfort"},
		{ID: "minibar", Name: "Mini Bar", Icon: "Wine", Category: "dining"},
		{ID: "safe", Name: "In-Room Safe", Icon: "Lock", Category: "comfort"},
		{ID: "coffee-maker", Name: "Coffee Maker", Icon: "Coffee", Category: "dining"},
		{ID: "bathrobes", Name: "Bathrobes & Slippers", Icon: "Shirt", Category: "comfort"},
		{ID: "sun-loungers", Name: "Private Sun Loungers", Icon: "Armchair", Category: "comfort"},
		{ID: "balcony", Name: "Private Balcony", Icon: "Home", Category: "comfort"},
		{ID: "terrace", Name: "Private Terrace", Icon: "TreePalm", Category: "comfort"},
		{ID: "ocean-view", Name: "Ocean View", Icon: "Waves", Category: "comfort"},
		{ID: "pool-access", Name: "Direct Pool Access", Icon: "Droplets", Category: "wellness"},
		{ID: "beach-access", Name: "Beach Access", Icon: "Umbrella", Category: "wellness"},
		{ID: "rooftop-terrace", Name: "Rooftop Terrace", Icon: "Sun", Category: "comfort"},
		{ID: "jacuzzi-tub", Name: "Jacuzzi Tub", Icon: "Bath", Category: "bathroom"},
		{ID: "premium-toiletries", Name: "Premium Toiletries", Icon: "Sparkles", Category: "bathroom"},
		{ID: "two-bathrooms", Name: "Two Bathrooms", Icon: "Bath", Category: "bathroom"},
		{ID: "living-room", Name: "Separate Living Room", Icon: "Sofa", Category: "comfort"},
		{ID: "dining-area", Name: "Dining Area", Icon: "UtensilsCrossed", Category: "dining"},
		{ID: "connecting-rooms", Name: "Connecting Rooms", Icon: "DoorOpen", Category: "comfort"},
		{ID: "gourmet-kitchen", Name: "Gourmet Kitchen", Icon: "ChefHat", Category: "dining"},
		{ID: "outdoor-kitchen", Name: "Outdoor Kitchen", Icon: "Flame", Category: "dining"},
		{ID: "game-console", Name: "Gaming Console", Icon: "Gamepad2", Category: "entertainment"},
		{ID: "private-cinema", Name: "Private Cinema", Icon: "Clapperboard", Category: "entertainment"},
		{ID: "butler-service", Name: "24/7 Butler Service", Icon: "BellRing", Category: "comfort"},
		{ID: "kids-amenities", Name: "Kids Amenities", Icon: "Baby", Category: "comfort"},
		{ID: "private-pool", Name: "Private Pool", Icon: "Waves", Category: "wellness"},
	}
}

// SelectAmenities keeps the order of ids and skips unknown ones. Nil ids returns everything.
func SelectAmenities(all []domain.Amenity, ids []string) []domain.Amenity {
	if ids == nil {
		return all
	}
	byID := make(map[string]domain.Amenity, len(all))
	for _, a := range all {
		byID[a.ID] = a
	}
	out := make([]domain.Amenity, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

func GroupAmenities(list []domain.Amenity) map[string][]domain.Amenity {
	out := make(map[string][]domain.Amenity)
	for _, a := range list {
		out[a.Category] = append(out[a.Category], a)
	}
	return out
}
