package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kioskpoint/backend/pkg/model"
)

// VisitorRepository is the concrete implementation for visitors.
type VisitorRepository struct {
	db *pgxpool.Pool
}

// GetOrCreate looks a visitor up by the (full_name, email) natural key and
// inserts one when absent. Phone and id_number from v are only used on
// insert; an existing row is returned as-is.
func (r *VisitorRepository) GetOrCreate(ctx context.Context, v model.Visitor) (model.Visitor, error) {
	const sel = `
SELECT id, full_name, email, phone, id_number, created_at
FROM visitors
WHERE full_name = $1 AND email IS NOT DISTINCT FROM $2
ORDER BY id
LIMIT 1
`
	var out model.Visitor
	row := r.db.QueryRow(ctx, sel, v.FullName, v.Email)
	err := row.Scan(&out.ID, &out.FullName, &out.Email, &out.Phone, &out.IDNumber, &out.CreatedAt)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Visitor{}, fmt.Errorf("scan visitor: %w", err)
	}

	const ins = `
INSERT INTO visitors (full_name, email, phone, id_number)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at
`
	out = v
	row = r.db.QueryRow(ctx, ins, v.FullName, v.Email, v.Phone, v.IDNumber)
	if err := row.Scan(&out.ID, &out.CreatedAt); err != nil {
		return model.Visitor{}, fmt.Errorf("insert visitor: %w", err)
	}
	return out, nil
}

// List returns visitors ordered by id (paginated).
func (r *VisitorRepository) List(ctx context.Context, limit, offset int) ([]model.Visitor, error) {
	const q = `
SELECT id, full_name, email, phone, id_number, created_at
FROM visitors
ORDER BY id
OFFSET $1 LIMIT $2
`
	rows, err := r.db.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	visitors := []model.Visitor{}
	for rows.Next() {
		var v model.Visitor
		if err := rows.Scan(&v.ID, &v.FullName, &v.Email, &v.Phone, &v.IDNumber, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visitor row: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}
