package postgres

import (
	"context"

	"github.com/ekaraca/gymhub-backend/internal/models"
	"github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

func NewAuditLogs(pool *pgxpool.Pool) repository.AuditLogs {
	return &auditLogsRepo{pool: pool}
}

func (r *auditLogsRepo) Create(l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO audit_logs(id, entity_type, entity_id, actor_id, action, details)
		 VALUES($1,$2,$3,$4,$5,$6)`,
		l.ID, l.EntityType, l.EntityID, l.ActorID, l.Action, l.Details,
	)
	return err
}
