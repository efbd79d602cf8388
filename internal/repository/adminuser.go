package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kioskpoint/backend/pkg/model"
)

// AdminUserRepository is the concrete implementation for kiosk admins.
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// ErrUsernameTaken is returned when creating an admin whose username exists.
var ErrUsernameTaken = errors.New("username already exists")

// Create inserts an admin user and returns the new user's id.
func (r *AdminUserRepository) Create(ctx context.Context, username, hashedPassword string, fullName *string) (int64, error) {
	const q = `
INSERT INTO admin_users (username, hashed_password, full_name)
VALUES ($1, $2, $3)
RETURNING id
`
	var id int64
	row := r.db.QueryRow(ctx, q, username, hashedPassword, fullName)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert admin user: %w", err)
	}
	return id, nil
}

// List returns admin users ordered by id (paginated).
func (r *AdminUserRepository) List(ctx context.Context, limit, offset int) ([]model.AdminUser, error) {
	const q = `
SELECT id, username, hashed_password, full_name, is_active, created_at
FROM admin_users
ORDER BY id
OFFSET $1 LIMIT $2
`
	rows, err := r.db.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	users := []model.AdminUser{}
	for rows.Next() {
		var u model.AdminUser
		if err := rows.Scan(&u.ID, &u.Username, &u.HashedPassword, &u.FullName, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
