package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	ListingID int64     `json:"listing_id"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedOn time.Time `json:"created_on"`
	Author    *User     `json:"author,omitempty"`
	Listing   *Listing  `json:"listing,omitempty"`
}
