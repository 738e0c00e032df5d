package services

import (
	"github.com/ekaraca/gymhub-backend/internal/models"
	repo "github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/ekaraca/gymhub-backend/internal/worker"
)

// auditor queues audit-log writes on the worker pool so entity mutations do
// not wait on the audit table.
type auditor struct {
	log repo.AuditLogs
	wp  *worker.Pool
}

func (a auditor) record(entityType, entityID, actorID, action string) {
	if a.log == nil || a.wp == nil {
		return
	}
	l := models.AuditLog{
		EntityType: entityType,
		EntityID:   &entityID,
		Action:     action,
	}
	if actorID != "" {
		l.ActorID = &actorID
	}
	a.wp.Submit(func() { _ = a.log.Create(l) })
}
