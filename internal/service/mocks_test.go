package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockListingRepository struct {
	mock.Mock
}

func (m *mockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *mockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*domain.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	args := m.Called(ctx, filter)
	if l := args.Get(0); l != nil {
		return l.([]domain.Listing), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepository) Update(ctx context.Context, listing *domain.Listing) error {
	return m.Called(ctx, listing).Error(0)
}

func (m *mockListingRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockListingRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking, blocking []domain.BookingStatus) error {
	return m.Called(ctx, booking, blocking).Error(0)
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if b := args.Get(0); b != nil {
		return b.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID)
	if b := args.Get(0); b != nil {
		return b.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) CountOverlapping(ctx context.Context, listingID int64, start, end time.Time, statuses []domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, listingID, start, end, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	args := m.Called(ctx, listingID)
	if r := args.Get(0); r != nil {
		return r.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Review, error) {
	args := m.Called(ctx, authorID)
	if r := args.Get(0); r != nil {
		return r.([]domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
