package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kioskpoint/backend/pkg/model"
)

// VisitRepository is the concrete implementation for visit logs.
type VisitRepository struct {
	db *pgxpool.Pool
}

// Create inserts a visit log with status checked_in and a freshly minted
// badge code. Visitor and Host on the returned record are left empty; the
// caller already holds both.
func (r *VisitRepository) Create(ctx context.Context, visitorID, hostID int64, purpose *string) (model.VisitLog, error) {
	const q = `
INSERT INTO visit_logs (visitor_id, host_id, purpose, badge_code, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, check_in_time
`
	v := model.VisitLog{
		Purpose:   purpose,
		BadgeCode: uuid.New().String(),
		Status:    model.VisitStatusCheckedIn,
	}
	row := r.db.QueryRow(ctx, q, visitorID, hostID, purpose, v.BadgeCode, v.Status)
	if err := row.Scan(&v.ID, &v.CheckInTime); err != nil {
		return model.VisitLog{}, fmt.Errorf("insert visit log: %w", err)
	}
	return v, nil
}

// Checkout stamps check_out_time on a currently checked-in visit and flips
// its status. Returns pgx.ErrNoRows when the visit is absent or already out.
func (r *VisitRepository) Checkout(ctx context.Context, id int64) (model.VisitLog, error) {
	const q = `
WITH updated AS (
	UPDATE visit_logs
	SET check_out_time = now(), status = $2
	WHERE id = $1 AND status = $3
	RETURNING id, visitor_id, host_id, purpose, badge_code, check_in_time, check_out_time, status
)
SELECT vl.id, vl.purpose, vl.badge_code, vl.check_in_time, vl.check_out_time, vl.status,
       v.id, v.full_name, v.email, v.phone, v.id_number, v.created_at,
       h.id, h.full_name, h.email, h.phone, h.department
FROM updated vl
JOIN visitors v ON v.id = vl.visitor_id
JOIN hosts h ON h.id = vl.host_id
`
	row := r.db.QueryRow(ctx, q, id, model.VisitStatusCheckedOut, model.VisitStatusCheckedIn)
	return scanVisitRow(row.Scan)
}

// List returns visit logs newest check-in first, visitor and host embedded.
func (r *VisitRepository) List(ctx context.Context, limit, offset int) ([]model.VisitLog, error) {
	const q = `
SELECT vl.id, vl.purpose, vl.badge_code, vl.check_in_time, vl.check_out_time, vl.status,
       v.id, v.full_name, v.email, v.phone, v.id_number, v.created_at,
       h.id, h.full_name, h.email, h.phone, h.department
FROM visit_logs vl
JOIN visitors v ON v.id = vl.visitor_id
JOIN hosts h ON h.id = vl.host_id
ORDER BY vl.check_in_time DESC
OFFSET $1 LIMIT $2
`
	rows, err := r.db.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list visit logs: %w", err)
	}
	defer rows.Close()

	visits := []model.VisitLog{}
	for rows.Next() {
		v, err := scanVisitRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func scanVisitRow(scan func(dest ...any) error) (model.VisitLog, error) {
	var vl model.VisitLog
	err := scan(
		&vl.ID, &vl.Purpose, &vl.BadgeCode, &vl.CheckInTime, &vl.CheckOutTime, &vl.Status,
		&vl.Visitor.ID, &vl.Visitor.FullName, &vl.Visitor.Email, &vl.Visitor.Phone, &vl.Visitor.IDNumber, &vl.Visitor.CreatedAt,
		&vl.Host.ID, &vl.Host.FullName, &vl.Host.Email, &vl.Host.Phone, &vl.Host.Department,
	)
	if err != nil {
		return model.VisitLog{}, fmt.Errorf("scan visit log row: %w", err)
	}
	return vl, nil
}
