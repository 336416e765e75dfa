package service

import (
	"context"
	"errors"
	"time"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
	"stayhaven-backend/internal/utils"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	// blockPending widens the overlap check so PENDING bookings also
	// reserve dates. Default behavior blocks on CONFIRMED only.
	blockPending bool
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	blockPending bool,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		blockPending: blockPending,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, customerID, listingID int64, start, end time.Time) (*domain.Booking, error) {
	customer, err := s.userRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("authenticated customer")
		}
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("listing")
		}
		return nil, err
	}

	if !listing.Available {
		return nil, apperr.Unavailable("listing")
	}

	if !start.Before(end) {
		return nil, apperr.InvalidRange()
	}

	blocking := s.blockingStatuses()
	count, err := s.bookingRepo.CountOverlapping(ctx, listing.ID, start, end, blocking)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.DateConflict()
	}

	booking := &domain.Booking{
		CustomerID:     customer.ID,
		ListingID:      listing.ID,
		StartDate:      start,
		EndDate:        end,
		TotalCostCents: utils.StayCost(start, end, listing.NightlyPriceCents),
		Status:         domain.BookingStatusPending,
	}

	if err := s.bookingRepo.Create(ctx, booking, blocking); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperr.DateConflict()
		}
		return nil, err
	}

	booking.Customer = customer
	booking.Listing = listing
	return booking, nil
}

// UpdateBookingDates moves an active booking to new dates and recomputes
// its cost against the listing's current nightly price. Date conflicts with
// other bookings are not re-checked on edit; only creation guards against
// overlap.
func (s *bookingService) UpdateBookingDates(ctx context.Context, bookingID, customerID int64, start, end time.Time) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CustomerID != customerID {
		return nil, apperr.PermissionDenied("permission denied to modify this booking")
	}

	if !booking.Status.IsActive() {
		return nil, apperr.InvalidState("cannot modify a cancelled or completed booking")
	}

	if !start.Before(end) {
		return nil, apperr.InvalidRange()
	}

	booking.StartDate = start
	booking.EndDate = end
	booking.TotalCostCents = utils.StayCost(start, end, booking.Listing.NightlyPriceCents)

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, customerID int64) error {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.CustomerID != customerID {
		return apperr.PermissionDenied("permission denied to modify this booking")
	}

	if !booking.Status.IsActive() {
		return apperr.InvalidState("cannot cancel an already completed or cancelled booking")
	}

	// Cancellation is a status transition, never a row removal.
	booking.Status = domain.BookingStatusCancelledByCustomer
	return s.bookingRepo.Update(ctx, booking)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID, ownerID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Listing.OwnerID != ownerID {
		return nil, apperr.PermissionDenied("permission denied: you are not the owner of this booking's listing")
	}

	if !domain.CanOwnerTransition(booking.Status, newStatus) {
		return nil, apperr.InvalidTransition(string(booking.Status), string(newStatus))
	}

	booking.Status = newStatus
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.getBooking(ctx, bookingID)
}

func (s *bookingService) ListBookingsByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *bookingService) ListBookingsByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID)
}

func (s *bookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *bookingService) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("booking")
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) blockingStatuses() []domain.BookingStatus {
	blocking := []domain.BookingStatus{domain.BookingStatusConfirmed}
	if s.blockPending {
		blocking = append(blocking, domain.BookingStatusPending)
	}
	return blocking
}
