package repository

import (
	"errors"

	"github.com/ekaraca/gymhub-backend/internal/models"
)

// ErrNotFound is returned when no row matches the query, including scoped
// queries that deliberately hide rows belonging to other users.
var ErrNotFound = errors.New("not found")

// ErrConflict signals a unique-constraint violation (username or email taken).
var ErrConflict = errors.New("conflict")

type Users interface {
	Create(u models.User) (models.User, error)
	GetByID(id string) (models.User, error)
	GetByUsername(username string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	List() ([]models.User, error)
	Update(u models.User) error
	Delete(id string) error
}

type Gyms interface {
	Create(g models.Gym) (models.Gym, error)
	GetByID(id string) (models.Gym, error)
	ListByStatus(status models.GymStatus) ([]models.Gym, error)
	ListByOwnerUsername(username string) ([]models.Gym, error)
	Update(g models.Gym) error
	Delete(id string) error
}

type Memberships interface {
	Create(m models.Membership) (models.Membership, error)
	// GetForUser only sees rows held by userID; anything else is ErrNotFound.
	GetForUser(id, userID string) (models.Membership, error)
	ListByUser(userID string) ([]models.Membership, error)
	UpdateForUser(m models.Membership) error
	DeleteForUser(id, userID string) error
}

type AuditLogs interface {
	Create(l models.AuditLog) error
}
