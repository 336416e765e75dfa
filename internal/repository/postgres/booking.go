package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"

	"github.com/lib/pq"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Half-open interval overlap: an existing booking blocks [start, end) when
// existing.start < end AND existing.end > start.
const overlapPredicate = `listing_id = $1 AND status = ANY($2) AND start_date < $3 AND end_date > $4`

const bookingColumns = `b.id, b.customer_id, b.listing_id, b.start_date, b.end_date, b.total_cost_cents, b.status, b.created_on`

const customerColumns = `c.id, c.name, c.email, c.phone, c.role, c.photo_url, c.created_on`

func scanBooking(row rowScanner, withOwner bool) (*domain.Booking, error) {
	b := &domain.Booking{Customer: &domain.User{}, Listing: &domain.Listing{}}
	var customerPhoto, listingPhoto sql.NullString
	dest := []any{
		&b.ID, &b.CustomerID, &b.ListingID, &b.StartDate, &b.EndDate, &b.TotalCostCents, &b.Status, &b.CreatedOn,
		&b.Customer.ID, &b.Customer.Name, &b.Customer.Email, &b.Customer.Phone, &b.Customer.Role, &customerPhoto, &b.Customer.CreatedOn,
		&b.Listing.ID, &b.Listing.Title, &b.Listing.Description, &b.Listing.Type, &b.Listing.Address, &b.Listing.City,
		&b.Listing.NightlyPriceCents, &b.Listing.Capacity, &b.Listing.Available, &listingPhoto, &b.Listing.OwnerID, &b.Listing.CreatedOn,
	}
	var ownerPhoto sql.NullString
	if withOwner {
		b.Listing.Owner = &domain.User{}
		o := b.Listing.Owner
		dest = append(dest, &o.ID, &o.Name, &o.Email, &o.Phone, &o.Role, &ownerPhoto, &o.CreatedOn)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b.Customer.PhotoURL = customerPhoto.String
	b.Listing.PhotoURL = listingPhoto.String
	if withOwner {
		b.Listing.Owner.PhotoURL = ownerPhoto.String
	}
	return b, nil
}

// Create runs the conflict re-check and the insert in one serializable
// transaction so two concurrent requests for overlapping dates cannot both
// commit.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking, blocking []domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int64
	err = tx.QueryRowContext(ctx,
		`SELECT count(*) FROM bookings WHERE `+overlapPredicate,
		b.ListingID, pq.Array(statusStrings(blocking)), b.EndDate, b.StartDate,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrConflict
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO bookings (customer_id, listing_id, start_date, end_date, total_cost_cents, status)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_on`,
		b.CustomerID, b.ListingID, b.StartDate, b.EndDate, b.TotalCostCents, b.Status,
	).Scan(&b.ID, &b.CreatedOn)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + customerColumns + `,
	       l.id, l.title, l.description, l.type, l.address, l.city, l.nightly_price_cents, l.capacity, l.available, l.photo_url, l.owner_id, l.created_on,
	       o.id, o.name, o.email, o.phone, o.role, o.photo_url, o.created_on
	          FROM bookings b
	          JOIN users c ON c.id = b.customer_id
	          JOIN listings l ON l.id = b.listing_id
	          JOIN users o ON o.id = l.owner_id
	          WHERE b.id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id), true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET start_date=$1, end_date=$2, total_cost_cents=$3, status=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, b.StartDate, b.EndDate, b.TotalCostCents, b.Status, b.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *bookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + customerColumns + `,
	       l.id, l.title, l.description, l.type, l.address, l.city, l.nightly_price_cents, l.capacity, l.available, l.photo_url, l.owner_id, l.created_on
	          FROM bookings b
	          JOIN users c ON c.id = b.customer_id
	          JOIN listings l ON l.id = b.listing_id
	          WHERE b.customer_id = $1
	          ORDER BY b.start_date DESC`
	return r.queryBookings(ctx, query, false, customerID)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + customerColumns + `,
	       l.id, l.title, l.description, l.type, l.address, l.city, l.nightly_price_cents, l.capacity, l.available, l.photo_url, l.owner_id, l.created_on,
	       o.id, o.name, o.email, o.phone, o.role, o.photo_url, o.created_on
	          FROM bookings b
	          JOIN users c ON c.id = b.customer_id
	          JOIN listings l ON l.id = b.listing_id
	          JOIN users o ON o.id = l.owner_id
	          WHERE l.owner_id = $1
	          ORDER BY b.created_on DESC`
	return r.queryBookings(ctx, query, true, ownerID)
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, ` + customerColumns + `,
	       l.id, l.title, l.description, l.type, l.address, l.city, l.nightly_price_cents, l.capacity, l.available, l.photo_url, l.owner_id, l.created_on,
	       o.id, o.name, o.email, o.phone, o.role, o.photo_url, o.created_on
	          FROM bookings b
	          JOIN users c ON c.id = b.customer_id
	          JOIN listings l ON l.id = b.listing_id
	          JOIN users o ON o.id = l.owner_id
	          ORDER BY b.id`
	return r.queryBookings(ctx, query, true)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, withOwner bool, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows, withOwner)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, listingID int64, start, end time.Time, statuses []domain.BookingStatus) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM bookings WHERE `+overlapPredicate,
		listingID, pq.Array(statusStrings(statuses)), end, start,
	).Scan(&count)
	return count, err
}

func (r *bookingRepository) CountByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM bookings WHERE customer_id = $1`, customerID).Scan(&count)
	return count, err
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
