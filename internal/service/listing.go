package service

import (
	"context"
	"errors"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/logger"
	"stayhaven-backend/internal/repository"
)

type listingService struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	userSvc     UserService
}

func NewListingService(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	userSvc UserService,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		userSvc:     userSvc,
	}
}

func (s *listingService) CreateListing(ctx context.Context, listing *domain.Listing, ownerID int64) (*domain.Listing, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("owner")
		}
		return nil, err
	}

	listing.OwnerID = owner.ID
	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	listing.Owner = owner

	s.recomputeOwnerRole(ctx, ownerID)
	return listing, nil
}

func (s *listingService) ListListings(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	return s.listingRepo.List(ctx, filter)
}

func (s *listingService) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	listing, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("listing")
		}
		return nil, err
	}
	return listing, nil
}

func (s *listingService) UpdateListing(ctx context.Context, id int64, update ListingUpdate, requesterID int64) (*domain.Listing, error) {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID != requesterID {
		return nil, apperr.PermissionDenied("permission denied: you are not the owner of this listing")
	}

	if update.Title != nil {
		listing.Title = *update.Title
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Type != nil {
		listing.Type = *update.Type
	}
	if update.Address != nil {
		listing.Address = *update.Address
	}
	if update.City != nil {
		listing.City = *update.City
	}
	if update.NightlyPriceCents != nil {
		listing.NightlyPriceCents = *update.NightlyPriceCents
	}
	if update.Capacity != nil {
		listing.Capacity = *update.Capacity
	}
	if update.Available != nil {
		listing.Available = *update.Available
	}
	if update.PhotoURL != nil {
		listing.PhotoURL = *update.PhotoURL
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	s.recomputeOwnerRole(ctx, requesterID)
	return listing, nil
}

func (s *listingService) DeleteListing(ctx context.Context, id int64, requesterID int64) error {
	listing, err := s.GetListing(ctx, id)
	if err != nil {
		return err
	}

	if listing.OwnerID != requesterID {
		return apperr.PermissionDenied("permission denied: you are not the owner of this listing")
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recomputeOwnerRole(ctx, requesterID)
	return nil
}

// recomputeOwnerRole runs the post-commit role derivation. Failures are
// logged, not surfaced: the listing mutation already committed.
func (s *listingService) recomputeOwnerRole(ctx context.Context, ownerID int64) {
	if err := s.userSvc.RecomputeRole(ctx, ownerID); err != nil {
		logger.Warn("failed to recompute user role", "user_id", ownerID, "error", err)
	}
}
