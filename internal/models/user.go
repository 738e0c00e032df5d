package models

import (
	"errors"
	"strings"
	"time"
)

type Role string

const (
	RoleMember   Role = "member"
	RoleGymOwner Role = "gym_owner"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleGymOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     string
	FirstName        string
	LastName         string
	Role             Role
	Phone            string
	Address          string
	City             string
	BirthDate        *Date
	EmergencyContact string
	EmergencyPhone   string
	FitnessGoals     string
	ProfileImage     string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks entity invariants without mutating the receiver; defaults
// are applied where the entity is built, not here.
func (u *User) Validate() error {
	if len(strings.TrimSpace(u.Username)) < 3 {
		return errors.New("username too short")
	}
	if !strings.Contains(u.Email, "@") {
		return errors.New("invalid email")
	}
	if !u.Role.Valid() {
		return errors.New("unknown role")
	}
	return nil
}
