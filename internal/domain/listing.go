package domain

import "time"

type ListingType string

const (
	ListingTypeRoom      ListingType = "ROOM"
	ListingTypeHouse     ListingType = "HOUSE"
	ListingTypeApartment ListingType = "APARTMENT"
	ListingTypeCottage   ListingType = "COTTAGE"
)

func (t ListingType) Valid() bool {
	switch t {
	case ListingTypeRoom, ListingTypeHouse, ListingTypeApartment, ListingTypeCottage:
		return true
	}
	return false
}

type Listing struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        ListingType `json:"type"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	// Nightly price snapshot used for booking cost calculations; stored in
	// cents so two-decimal amounts stay exact.
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	Capacity          int32     `json:"capacity"`
	Available         bool      `json:"available"`
	PhotoURL          string    `json:"photo_url,omitempty"`
	OwnerID           int64     `json:"owner_id"`
	Owner             *User     `json:"owner,omitempty"`
	CreatedOn         time.Time `json:"created_on"`
}
