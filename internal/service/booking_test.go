package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
	"stayhaven-backend/internal/service"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testCustomer() *domain.User {
	return &domain.User{ID: 7, Name: "Alice Meyer", Email: "alice@example.com", Role: domain.UserRoleCustomer}
}

func testListing() *domain.Listing {
	return &domain.Listing{
		ID:                42,
		Title:             "Seaside Cottage",
		Type:              domain.ListingTypeCottage,
		Address:           "1 Shore Rd",
		City:              "Brighton",
		NightlyPriceCents: 15000,
		Capacity:          4,
		Available:         true,
		OwnerID:           3,
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateBooking(t *testing.T) {
	start := date(2025, time.December, 1)
	end := date(2025, time.December, 5)

	t.Run("creates pending booking with computed cost", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(testListing(), nil)
		bookingRepo.On("CountOverlapping", mock.Anything, int64(42), start, end,
			[]domain.BookingStatus{domain.BookingStatusConfirmed}).Return(int64(0), nil)
		bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking"),
			[]domain.BookingStatus{domain.BookingStatusConfirmed}).Return(nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		booking, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, int64(60000), booking.TotalCostCents)
		assert.Equal(t, int64(7), booking.CustomerID)
		assert.Equal(t, int64(42), booking.ListingID)
		require.NotNil(t, booking.Customer)
		require.NotNil(t, booking.Listing)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("missing customer", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, repository.ErrNotFound)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		assertCode(t, err, apperr.CodeNotFound)
		listingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing listing", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		assertCode(t, err, apperr.CodeNotFound)
	})

	t.Run("listing not available", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		listing := testListing()
		listing.Available = false
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(listing, nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		assertCode(t, err, apperr.CodeUnavailable)
		bookingRepo.AssertNotCalled(t, "CountOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("end date not after start date", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(testListing(), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)

		_, err := svc.CreateBooking(context.Background(), 7, 42, end, start)
		assertCode(t, err, apperr.CodeInvalidRange)

		_, err = svc.CreateBooking(context.Background(), 7, 42, start, start)
		assertCode(t, err, apperr.CodeInvalidRange)
	})

	t.Run("overlap with confirmed booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(testListing(), nil)
		bookingRepo.On("CountOverlapping", mock.Anything, int64(42), start, end,
			[]domain.BookingStatus{domain.BookingStatusConfirmed}).Return(int64(1), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		assertCode(t, err, apperr.CodeDateConflict)
		bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pending bookings block when toggled on", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		wantBlocking := []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusPending}
		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(testListing(), nil)
		bookingRepo.On("CountOverlapping", mock.Anything, int64(42), start, end, wantBlocking).Return(int64(0), nil)
		bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking"), wantBlocking).Return(nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, true)
		_, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		require.NoError(t, err)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("transactional re-check conflict", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		userRepo.On("GetByID", mock.Anything, int64(7)).Return(testCustomer(), nil)
		listingRepo.On("GetByID", mock.Anything, int64(42)).Return(testListing(), nil)
		bookingRepo.On("CountOverlapping", mock.Anything, int64(42), start, end,
			[]domain.BookingStatus{domain.BookingStatusConfirmed}).Return(int64(0), nil)
		bookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking"),
			[]domain.BookingStatus{domain.BookingStatusConfirmed}).Return(repository.ErrConflict)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.CreateBooking(context.Background(), 7, 42, start, end)

		assertCode(t, err, apperr.CodeDateConflict)
	})
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:             100,
		CustomerID:     7,
		ListingID:      42,
		StartDate:      date(2025, time.December, 1),
		EndDate:        date(2025, time.December, 5),
		TotalCostCents: 60000,
		Status:         domain.BookingStatusPending,
		Customer:       testCustomer(),
		Listing:        testListing(),
	}
}

func TestUpdateBookingDates(t *testing.T) {
	t.Run("recomputes cost at the listing's current price", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		booking := pendingBooking()
		booking.Listing.NightlyPriceCents = 20000
		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)
		bookingRepo.On("Update", mock.Anything, booking).Return(nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		updated, err := svc.UpdateBookingDates(context.Background(), 100, 7,
			date(2025, time.December, 10), date(2025, time.December, 12))

		require.NoError(t, err)
		assert.Equal(t, date(2025, time.December, 10), updated.StartDate)
		assert.Equal(t, int64(40000), updated.TotalCostCents)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("only the booking customer may edit", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(pendingBooking(), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.UpdateBookingDates(context.Background(), 100, 99,
			date(2025, time.December, 10), date(2025, time.December, 12))

		assertCode(t, err, apperr.CodePermissionDenied)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("inactive bookings are frozen", func(t *testing.T) {
		for _, status := range []domain.BookingStatus{
			domain.BookingStatusCancelledByCustomer,
			domain.BookingStatusCancelledByOwner,
			domain.BookingStatusCompleted,
		} {
			userRepo := new(mockUserRepository)
			listingRepo := new(mockListingRepository)
			bookingRepo := new(mockBookingRepository)

			booking := pendingBooking()
			booking.Status = status
			bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)

			svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
			_, err := svc.UpdateBookingDates(context.Background(), 100, 7,
				date(2025, time.December, 10), date(2025, time.December, 12))

			assertCode(t, err, apperr.CodeInvalidState)
		}
	})

	t.Run("rejects reversed range", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(pendingBooking(), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.UpdateBookingDates(context.Background(), 100, 7,
			date(2025, time.December, 12), date(2025, time.December, 10))

		assertCode(t, err, apperr.CodeInvalidRange)
	})

	t.Run("missing booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(nil, repository.ErrNotFound)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.UpdateBookingDates(context.Background(), 100, 7,
			date(2025, time.December, 10), date(2025, time.December, 12))

		assertCode(t, err, apperr.CodeNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("marks the booking cancelled by customer", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		booking := pendingBooking()
		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)
		bookingRepo.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusCancelledByCustomer
		})).Return(nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		require.NoError(t, svc.CancelBooking(context.Background(), 100, 7))
		bookingRepo.AssertExpectations(t)
	})

	t.Run("only the booking customer may cancel", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(pendingBooking(), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		err := svc.CancelBooking(context.Background(), 100, 99)

		assertCode(t, err, apperr.CodePermissionDenied)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("cannot cancel a completed booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		booking := pendingBooking()
		booking.Status = domain.BookingStatusCompleted
		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		err := svc.CancelBooking(context.Background(), 100, 7)

		assertCode(t, err, apperr.CodeInvalidState)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("owner confirms a pending booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		booking := pendingBooking()
		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)
		bookingRepo.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusConfirmed
		})).Return(nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		updated, err := svc.UpdateBookingStatus(context.Background(), 100, 3, domain.BookingStatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)
	})

	t.Run("owner rejects a pending booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(pendingBooking(), nil)
		bookingRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		updated, err := svc.UpdateBookingStatus(context.Background(), 100, 3, domain.BookingStatusCancelledByOwner)

		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelledByOwner, updated.Status)
	})

	t.Run("non-owner is rejected even when they are the customer", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(pendingBooking(), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.UpdateBookingStatus(context.Background(), 100, 7, domain.BookingStatusConfirmed)

		assertCode(t, err, apperr.CodePermissionDenied)
	})

	t.Run("owner cannot complete a booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(pendingBooking(), nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.UpdateBookingStatus(context.Background(), 100, 3, domain.BookingStatusCompleted)

		assertCode(t, err, apperr.CodeInvalidTransition)
		assert.Contains(t, err.Error(), "from PENDING to COMPLETED")
	})

	t.Run("no transition out of a decided booking", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		listingRepo := new(mockListingRepository)
		bookingRepo := new(mockBookingRepository)

		booking := pendingBooking()
		booking.Status = domain.BookingStatusConfirmed
		bookingRepo.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)

		svc := service.NewBookingService(bookingRepo, listingRepo, userRepo, false)
		_, err := svc.UpdateBookingStatus(context.Background(), 100, 3, domain.BookingStatusCancelledByOwner)

		assertCode(t, err, apperr.CodeInvalidTransition)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
