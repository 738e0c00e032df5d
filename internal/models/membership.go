package models

import "time"

type PlanType string

const (
	PlanClassic      PlanType = "classic"
	PlanProfessional PlanType = "professional"
)

func (p PlanType) Valid() bool {
	return p == PlanClassic || p == PlanProfessional
}

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipExpired   MembershipStatus = "expired"
	MembershipCancelled MembershipStatus = "cancelled"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipActive, MembershipExpired, MembershipCancelled:
		return true
	}
	return false
}

type Membership struct {
	ID              string
	UserID          string
	PlanType        PlanType
	Status          MembershipStatus
	TotalVisits     int
	RemainingVisits int
	Price           string // fixed-point decimal, e.g. "49.90"
	PurchaseDate    Date
	ExpiryDate      Date
	CreatedAt       time.Time

	// Joined from the holder row on reads.
	UserEmail string
}
