package models

import "time"

type GymStatus string

const (
	GymPending   GymStatus = "pending"
	GymActive    GymStatus = "active"
	GymSuspended GymStatus = "suspended"
)

func (s GymStatus) Valid() bool {
	switch s {
	case GymPending, GymActive, GymSuspended:
		return true
	}
	return false
}

type Gym struct {
	ID          string
	Name        string
	OwnerID     string
	Description string
	Address     string
	City        string
	Area        string
	Phone       string
	Amenities   []string
	Hours       string
	ImageURL    string
	Status      GymStatus
	Capacity    *int
	Featured    bool
	CreatedAt   time.Time

	// Joined from the owner row on reads, never written back.
	OwnerUsername string
	OwnerEmail    string
}
