package domain

type RoomType string

const (
	RoomStandard     RoomType = "standard"
	RoomOceanView    RoomType = "ocean-view"
	RoomSuperior     RoomType = "superior"
	RoomSuite        RoomType = "suite"
	RoomFamilySuite  RoomType = "family-suite"
	RoomPresidential RoomType = "presidential"
)

type RoomImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `json:"isPrimary"`
}

type Bed struct {
	Type  string `json:"type"` // king|queen|twin|sofa-bed
	Count int    `json:"count"`
}

type Capacity struct {
	MaxGuests int   `json:"maxGuests"`
	Beds      []Bed `json:"beds"`
}

type RoomSize struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"` // sqft|sqm
}

// Room is a static catalog entry. Prices are whole CLP units.
type Room struct {
	ID               string      `json:"id"`
	Slug             string      `json:"slug"`
	Type             RoomType    `json:"type"`
	Name             string      `json:"name"`
	ShortDescription string      `json:"shortDescription"`
	FullDescription  string      `json:"fullDescription"`
	PricePerNight    int64       `json:"pricePerNight"`
	Currency         string      `json:"currency"`
	Images           []RoomImage `json:"images"`
	AmenityIDs       []string    `json:"amenityIds"`
	Capacity         Capacity    `json:"capacity"`
	Size             RoomSize    `json:"size"`
	FloorLevel       string      `json:"floorLevel"`
	ViewType         string      `json:"viewType"`
	IsAvailable      bool        `json:"isAvailable"`
	FeaturedOrder    *int        `json:"featuredOrder,omitempty"`
}

type Amenity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// RoomsQuery filters the catalog. Empty Type (or "all") means every type.
type RoomsQuery struct {
	Type     string
	Featured bool
}
