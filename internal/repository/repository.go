package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	Visitor   VisitorRepository
	Host      HostRepository
	Visit     VisitRepository
	AdminUser AdminUserRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Visitor:   VisitorRepository{db: db},
		Host:      HostRepository{db: db},
		Visit:     VisitRepository{db: db},
		AdminUser: AdminUserRepository{db: db},
	}
}
