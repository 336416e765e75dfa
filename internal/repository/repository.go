package repository

import (
	"context"
	"errors"
	"time"

	"stayhaven-backend/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist. Services
// translate it into the caller-facing error taxonomy.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by BookingRepository.Create when the transactional
// re-check finds an overlapping booking that was committed after the
// service-level availability check.
var ErrConflict = errors.New("conflicting booking exists")

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// ListingFilter narrows ListingRepository.List. Zero values mean "no filter".
type ListingFilter struct {
	City          string
	Types         []domain.ListingType
	MinCapacity   int32
	MinPriceCents int64
	MaxPriceCents int64
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	// GetByID resolves the listing with its owner attached.
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	List(ctx context.Context, filter ListingFilter) ([]domain.Listing, error)
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int64, error)
}

type BookingRepository interface {
	// Create inserts the booking inside a serializable transaction that
	// re-checks for overlapping bookings in any of the blocking statuses.
	// Returns ErrConflict if an overlap committed since the caller's check.
	Create(ctx context.Context, booking *domain.Booking, blocking []domain.BookingStatus) error
	// GetByID resolves the booking with customer, listing and listing owner
	// attached.
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	// ListByCustomer returns the customer's bookings ordered by start date
	// descending, with customer and listing attached.
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	// ListByOwner returns bookings against the owner's listings ordered by
	// creation time descending, with customer, listing and owner attached.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
	// CountOverlapping counts bookings for the listing in any of the given
	// statuses whose [start, end) interval overlaps the given one.
	CountOverlapping(ctx context.Context, listingID int64, start, end time.Time, statuses []domain.BookingStatus) (int64, error)
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]domain.Review, error)
	Delete(ctx context.Context, id int64) error
}
