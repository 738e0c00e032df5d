package models

import "time"

type AuditLog struct {
	ID         string         `json:"id"`
	EntityType string         `json:"entity_type"` // user | gym | membership
	EntityID   *string        `json:"entity_id"`
	ActorID    *string        `json:"actor_id"`
	Action     string         `json:"action"` // created | updated | deleted
	Details    map[string]any `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
