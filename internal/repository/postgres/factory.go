package postgres

import (
	repo "github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users       repo.Users
	Gyms        repo.Gyms
	Memberships repo.Memberships
	AuditLogs   repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:       &usersRepo{pool},
		Gyms:        &gymsRepo{pool},
		Memberships: &membershipsRepo{pool},
		AuditLogs:   &auditLogsRepo{pool},
	}
}
