package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the kiosk schema if it does not exist. Statements are
// idempotent so startup can run them unconditionally.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			id_number TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visitors_email ON visitors (email)`,
		`CREATE TABLE IF NOT EXISTS hosts (
			id BIGSERIAL PRIMARY KEY,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone TEXT,
			department TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS visit_logs (
			id BIGSERIAL PRIMARY KEY,
			visitor_id BIGINT NOT NULL REFERENCES visitors(id),
			host_id BIGINT NOT NULL REFERENCES hosts(id),
			purpose TEXT,
			badge_code TEXT NOT NULL,
			check_in_time TIMESTAMPTZ NOT NULL DEFAULT now(),
			check_out_time TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'checked_in'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visit_logs_check_in_time ON visit_logs (check_in_time DESC)`,
		`CREATE TABLE IF NOT EXISTS admin_users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			hashed_password TEXT NOT NULL,
			full_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
