package service

import (
	"context"
	"errors"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, authorID, listingID int64, rating int32, comment string) (*domain.Review, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("author")
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

	review := &domain.Review{
		AuthorID:  author.ID,
		ListingID: listing.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	review.Author = author
	review.Listing = listing
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *reviewService) ListReviewsByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	return s.reviewRepo.ListByListing(ctx, listingID)
}

func (s *reviewService) ListReviewsByAuthor(ctx context.Context, authorID int64) ([]domain.Review, error) {
	return s.reviewRepo.ListByAuthor(ctx, authorID)
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	if _, err := s.reviewRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("review")
		}
		return err
	}
	return s.reviewRepo.Delete(ctx, id)
}
