package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stayhaven-backend/internal/domain"
	"stayhaven-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	var photo sql.NullString
	query := `SELECT id, name, email, phone, role, photo_url, created_on FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &photo, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.PhotoURL = photo.String
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, name, email, phone, role, photo_url, created_on FROM users ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var photo sql.NullString
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &photo, &u.CreatedOn); err != nil {
			return nil, err
		}
		u.PhotoURL = photo.String
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, phone=$2, role=$3, photo_url=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Phone, u.Role, nullable(u.PhotoURL), u.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// nullable maps an empty string to NULL for optional text columns.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
