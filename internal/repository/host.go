package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kioskpoint/backend/pkg/model"
)

// HostRepository is the concrete implementation for hosts.
type HostRepository struct {
	db *pgxpool.Pool
}

// GetOrCreateByEmail looks a host up by email and inserts one when absent,
// deriving the display name from the local part of the address. Two kiosks
// racing on the same email lose to the unique constraint and re-select.
func (r *HostRepository) GetOrCreateByEmail(ctx context.Context, email string) (model.Host, error) {
	h, err := r.getByEmail(ctx, email)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Host{}, fmt.Errorf("scan host: %w", err)
	}

	const ins = `
INSERT INTO hosts (full_name, email)
VALUES ($1, $2)
RETURNING id
`
	h = model.Host{FullName: hostNameFromEmail(email), Email: email}
	row := r.db.QueryRow(ctx, ins, h.FullName, h.Email)
	if err := row.Scan(&h.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// lost the insert race, the row exists now
			return r.getByEmail(ctx, email)
		}
		return model.Host{}, fmt.Errorf("insert host: %w", err)
	}
	return h, nil
}

func (r *HostRepository) getByEmail(ctx context.Context, email string) (model.Host, error) {
	const q = `
SELECT id, full_name, email, phone, department
FROM hosts
WHERE email = $1
`
	var h model.Host
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&h.ID, &h.FullName, &h.Email, &h.Phone, &h.Department); err != nil {
		return model.Host{}, err
	}
	return h, nil
}

// List returns hosts ordered by id (paginated).
func (r *HostRepository) List(ctx context.Context, limit, offset int) ([]model.Host, error) {
	const q = `
SELECT id, full_name, email, phone, department
FROM hosts
ORDER BY id
OFFSET $1 LIMIT $2
`
	rows, err := r.db.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list hosts: %w", err)
	}
	defer rows.Close()

	hosts := []model.Host{}
	for rows.Next() {
		var h model.Host
		if err := rows.Scan(&h.ID, &h.FullName, &h.Email, &h.Phone, &h.Department); err != nil {
			return nil, fmt.Errorf("scan host row: %w", err)
		}
		hosts = append(hosts, h)
	}
	return hosts, rows.Err()
}

// hostNameFromEmail derives a display name for an auto-created host from the
// local part of their address.
func hostNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
