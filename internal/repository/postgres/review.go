package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (author_id, listing_id, rating, comment)
	          VALUES ($1, $2, $3, $4) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, rv.AuthorID, rv.ListingID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedOn)
}

const reviewAuthorColumns = `r.id, r.author_id, r.listing_id, r.rating, r.comment, r.created_on,
	       a.id, a.name, a.email, a.phone, a.role, a.photo_url, a.created_on`

func scanReviewWithAuthor(row rowScanner) (*domain.Review, error) {
	rv := &domain.Review{Author: &domain.User{}}
	var authorPhoto sql.NullString
	err := row.Scan(
		&rv.ID, &rv.AuthorID, &rv.ListingID, &rv.Rating, &rv.Comment, &rv.CreatedOn,
		&rv.Author.ID, &rv.Author.Name, &rv.Author.Email, &rv.Author.Phone, &rv.Author.Role, &authorPhoto, &rv.Author.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	rv.Author.PhotoURL = authorPhoto.String
	return rv, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `SELECT ` + reviewAuthorColumns + `
	          FROM reviews r
	          JOIN users a ON a.id = r.author_id
	          WHERE r.id = $1`
	rv, err := scanReviewWithAuthor(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT ` + reviewAuthorColumns + `
	          FROM reviews r
	          JOIN users a ON a.id = r.author_id
	          ORDER BY r.id`
	return r.queryReviews(ctx, query)
}

func (r *reviewRepository) ListByListing(ctx context.Context, listingID int64) ([]domain.Review, error) {
	query := `SELECT ` + reviewAuthorColumns + `
	          FROM reviews r
	          JOIN users a ON a.id = r.author_id
	          WHERE r.listing_id = $1
	          ORDER BY r.id`
	return r.queryReviews(ctx, query, listingID)
}

func (r *reviewRepository) ListByAuthor(ctx context.Context, authorID int64) ([]domain.Review, error) {
	query := `SELECT ` + reviewAuthorColumns + `
	          FROM reviews r
	          JOIN users a ON a.id = r.author_id
	          WHERE r.author_id = $1
	          ORDER BY r.id`
	return r.queryReviews(ctx, query, authorID)
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReviewWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
