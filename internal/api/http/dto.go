package http

import (
	"time"

	"stayhaven-backend/internal/domain"
)

const dateLayout = "2006-01-02"

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	CreatedOn time.Time `json:"created_on"`
}

type listingResponse struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Type              string        `json:"type"`
	Address           string        `json:"address"`
	City              string        `json:"city"`
	NightlyPriceCents int64         `json:"nightly_price_cents"`
	Capacity          int32         `json:"capacity"`
	Available         bool          `json:"available"`
	PhotoURL          string        `json:"photo_url,omitempty"`
	OwnerID           int64         `json:"owner_id"`
	Owner             *userResponse `json:"owner,omitempty"`
	CreatedOn         time.Time     `json:"created_on"`
}

type bookingResponse struct {
	ID             int64            `json:"id"`
	CustomerID     int64            `json:"customer_id"`
	ListingID      int64            `json:"listing_id"`
	StartDate      string           `json:"start_date"`
	EndDate        string           `json:"end_date"`
	TotalCostCents int64            `json:"total_cost_cents"`
	Status         string           `json:"status"`
	Customer       *userResponse    `json:"customer,omitempty"`
	Listing        *listingResponse `json:"listing,omitempty"`
	CreatedOn      time.Time        `json:"created_on"`
}

type reviewResponse struct {
	ID        int64            `json:"id"`
	AuthorID  int64            `json:"author_id"`
	ListingID int64            `json:"listing_id"`
	Rating    int32            `json:"rating"`
	Comment   string           `json:"comment"`
	Author    *userResponse    `json:"author,omitempty"`
	Listing   *listingResponse `json:"listing,omitempty"`
	CreatedOn time.Time        `json:"created_on"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		PhotoURL:  u.PhotoURL,
		CreatedOn: u.CreatedOn,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return out
}

func toListingResponse(l *domain.Listing) *listingResponse {
	if l == nil {
		return nil
	}
	return &listingResponse{
		ID:                l.ID,
		Title:             l.Title,
		Description:       l.Description,
		Type:              string(l.Type),
		Address:           l.Address,
		City:              l.City,
		NightlyPriceCents: l.NightlyPriceCents,
		Capacity:          l.Capacity,
		Available:         l.Available,
		PhotoURL:          l.PhotoURL,
		OwnerID:           l.OwnerID,
		Owner:             toUserResponse(l.Owner),
		CreatedOn:         l.CreatedOn,
	}
}

func toListingResponses(listings []domain.Listing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, *toListingResponse(&listings[i]))
	}
	return out
}

func toBookingResponse(b *domain.Booking) *bookingResponse {
	if b == nil {
		return nil
	}
	return &bookingResponse{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		ListingID:      b.ListingID,
		StartDate:      b.StartDate.Format(dateLayout),
		EndDate:        b.EndDate.Format(dateLayout),
		TotalCostCents: b.TotalCostCents,
		Status:         string(b.Status),
		Customer:       toUserResponse(b.Customer),
		Listing:        toListingResponse(b.Listing),
		CreatedOn:      b.CreatedOn,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *toBookingResponse(&bookings[i]))
	}
	return out
}

func toReviewResponse(rv *domain.Review) *reviewResponse {
	if rv == nil {
		return nil
	}
	return &reviewResponse{
		ID:        rv.ID,
		AuthorID:  rv.AuthorID,
		ListingID: rv.ListingID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		Author:    toUserResponse(rv.Author),
		Listing:   toListingResponse(rv.Listing),
		CreatedOn: rv.CreatedOn,
	}
}

func toReviewResponses(reviews []domain.Review) []reviewResponse {
	out := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *toReviewResponse(&reviews[i]))
	}
	return out
}
