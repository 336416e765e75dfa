package service

import (
	"context"
	"time"

	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
)

type BookingService interface {
	CreateBooking(ctx context.Context, customerID, listingID int64, start, end time.Time) (*domain.Booking, error)
	UpdateBookingDates(ctx context.Context, bookingID, customerID int64, start, end time.Time) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, customerID int64) error
	UpdateBookingStatus(ctx context.Context, bookingID, ownerID int64, newStatus domain.BookingStatus) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	ListBookingsByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	ListBookingsByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
}

// ListingUpdate carries a partial listing update; nil fields are left as-is.
type ListingUpdate struct {
	Title             *string
	Description       *string
	Type              *domain.ListingType
	Address           *string
	City              *string
	NightlyPriceCents *int64
	Capacity          *int32
	Available         *bool
	PhotoURL          *string
}

type ListingService interface {
	CreateListing(ctx context.Context, listing *domain.Listing, ownerID int64) (*domain.Listing, error)
	ListListings(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error)
	GetListing(ctx context.Context, id int64) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id int64, update ListingUpdate, requesterID int64) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id int64, requesterID int64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, phone, photoURL string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	// RecomputeRole re-derives the user's role from their current listing
	// and booking counts. Invoked as an explicit post-commit step after
	// listing mutations.
	RecomputeRole(ctx context.Context, userID int64) error
}

type ReviewService interface {
	CreateReview(ctx context.Context, authorID, listingID int64, rating int32, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
	ListReviewsByListing(ctx context.Context, listingID int64) ([]domain.Review, error)
	ListReviewsByAuthor(ctx context.Context, authorID int64) ([]domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}
