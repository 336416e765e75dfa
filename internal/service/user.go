package service

import (
	"context"
	"errors"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
)

type userService struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
	bookingRepo repository.BookingRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
	bookingRepo repository.BookingRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		listingRepo: listingRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, name, phone, photoURL string) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}
	if photoURL != "" {
		user.PhotoURL = photoURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	listingCount, err := s.listingRepo.CountByOwner(ctx, id)
	if err != nil {
		return err
	}
	if listingCount > 0 {
		return apperr.InvalidState("cannot delete a user who still has registered listings")
	}

	bookingCount, err := s.bookingRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if bookingCount > 0 {
		return apperr.InvalidState("cannot delete a user who still has linked bookings")
	}

	return s.userRepo.Delete(ctx, id)
}

// RecomputeRole derives the role from current listing and booking counts
// and persists it only when it changed. A missing user is not an error:
// role maintenance is best-effort bookkeeping after mutations elsewhere.
func (s *userService) RecomputeRole(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	listingCount, err := s.listingRepo.CountByOwner(ctx, userID)
	if err != nil {
		return err
	}
	bookingCount, err := s.bookingRepo.CountByCustomer(ctx, userID)
	if err != nil {
		return err
	}

	role := domain.DeriveRole(listingCount, bookingCount)
	if role == user.Role {
		return nil
	}

	user.Role = role
	return s.userRepo.Update(ctx, user)
}
