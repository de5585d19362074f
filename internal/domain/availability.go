package domain

// AvailabilityEntry is one room on one calendar day.
// PriceModifier is informational (weekend surcharge) and never enters booking totals.
type AvailabilityEntry struct {
	RoomID        string   `json:"roomId"`
	Date          string   `json:"date"` // YYYY-MM-DD
	IsAvailable   bool     `json:"isAvailable"`
	PriceModifier *float64 `json:"priceModifier,omitempty"`
}

type RoomAvailability struct {
	RoomID      string              `json:"roomId"`
	IsAvailable bool                `json:"isAvailable"`
	CheckIn     string              `json:"checkIn"`
	CheckOut    string              `json:"checkOut"`
	Entries     []AvailabilityEntry `json:"entries"`
}

type RangeAvailability struct {
	CheckIn          string              `json:"checkIn"`
	CheckOut         string              `json:"checkOut"`
	AvailableRoomIDs []string            `json:"availableRoomIds"`
	Entries          []AvailabilityEntry `json:"entries"`
}
