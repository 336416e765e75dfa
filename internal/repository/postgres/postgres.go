package postgres

import (
	"database/sql"

	"stayhaven-backend/internal/repository"

	_ "github.com/lib/pq"
)

// Store bundles the PostgreSQL-backed repositories behind one handle.
type Store struct {
	db       *sql.DB
	Users    repository.UserRepository
	Listings repository.ListingRepository
	Bookings repository.BookingRepository
	Reviews  repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		Users:    NewUserRepository(db),
		Listings: NewListingRepository(db),
		Bookings: NewBookingRepository(db),
		Reviews:  NewReviewRepository(db),
	}
}
