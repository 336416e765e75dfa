package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"

	"github.com/lib/pq"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (title, description, type, address, city, nightly_price_cents, capacity, available, photo_url, owner_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query,
		l.Title, l.Description, l.Type, l.Address, l.City, l.NightlyPriceCents,
		l.Capacity, l.Available, nullable(l.PhotoURL), l.OwnerID,
	).Scan(&l.ID, &l.CreatedOn)
}

const listingOwnerColumns = `l.id, l.title, l.description, l.type, l.address, l.city, l.nightly_price_cents, l.capacity, l.available, l.photo_url, l.owner_id, l.created_on,
	       o.id, o.name, o.email, o.phone, o.role, o.photo_url, o.created_on`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanListingWithOwner(row rowScanner) (*domain.Listing, error) {
	l := &domain.Listing{Owner: &domain.User{}}
	var listingPhoto, ownerPhoto sql.NullString
	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Type, &l.Address, &l.City,
		&l.NightlyPriceCents, &l.Capacity, &l.Available, &listingPhoto, &l.OwnerID, &l.CreatedOn,
		&l.Owner.ID, &l.Owner.Name, &l.Owner.Email, &l.Owner.Phone, &l.Owner.Role, &ownerPhoto, &l.Owner.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	l.PhotoURL = listingPhoto.String
	l.Owner.PhotoURL = ownerPhoto.String
	return l, nil
}

func (r *listingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingOwnerColumns + `
	          FROM listings l
	          JOIN users o ON o.id = l.owner_id
	          WHERE l.id = $1`
	l, err := scanListingWithOwner(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) List(ctx context.Context, filter repository.ListingFilter) ([]domain.Listing, error) {
	query := `SELECT ` + listingOwnerColumns + `
	          FROM listings l
	          JOIN users o ON o.id = l.owner_id
	          WHERE 1=1`

	var args []interface{}
	argIdx := 1
	if filter.City != "" {
		query += fmt.Sprintf(" AND l.city = $%d", argIdx)
		args = append(args, filter.City)
		argIdx++
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query += fmt.Sprintf(" AND l.type = ANY($%d)", argIdx)
		args = append(args, pq.Array(types))
		argIdx++
	}
	if filter.MinCapacity > 0 {
		query += fmt.Sprintf(" AND l.capacity >= $%d", argIdx)
		args = append(args, filter.MinCapacity)
		argIdx++
	}
	if filter.MinPriceCents > 0 {
		query += fmt.Sprintf(" AND l.nightly_price_cents >= $%d", argIdx)
		args = append(args, filter.MinPriceCents)
		argIdx++
	}
	if filter.MaxPriceCents > 0 {
		query += fmt.Sprintf(" AND l.nightly_price_cents <= $%d", argIdx)
		args = append(args, filter.MaxPriceCents)
		argIdx++
	}
	query += " ORDER BY l.id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		l, err := scanListingWithOwner(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

func (r *listingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings SET title=$1, description=$2, type=$3, address=$4, city=$5, nightly_price_cents=$6, capacity=$7, available=$8, photo_url=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query,
		l.Title, l.Description, l.Type, l.Address, l.City, l.NightlyPriceCents,
		l.Capacity, l.Available, nullable(l.PhotoURL), l.ID,
	)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *listingRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *listingRepository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM listings WHERE owner_id = $1`, ownerID).Scan(&count)
	return count, err
}
