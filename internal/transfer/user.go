// Package transfer maps entities to and from their wire representation. Field
// exposure is an explicit, reviewable contract: every payload enumerates its
// fields, sensitive columns (password hashes) have no output field at all.
package transfer

import (
	"github.com/ekaraca/gymhub-backend/internal/api/validate"
	"github.com/ekaraca/gymhub-backend/internal/models"
)

// UserProfile is the read side of a user. The password never appears here.
type UserProfile struct {
	ID               string       `json:"id"`
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Role             models.Role  `json:"role"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	City             string       `json:"city"`
	BirthDate        *models.Date `json:"birth_date"`
	EmergencyContact string       `json:"emergency_contact"`
	EmergencyPhone   string       `json:"emergency_phone"`
	FitnessGoals     string       `json:"fitness_goals"`
	ProfileImage     string       `json:"profile_image"`
}

func NewUserProfile(u models.User) UserProfile {
	return UserProfile{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Role:             u.Role,
		Phone:            u.Phone,
		Address:          u.Address,
		City:             u.City,
		BirthDate:        u.BirthDate,
		EmergencyContact: u.EmergencyContact,
		EmergencyPhone:   u.EmergencyPhone,
		FitnessGoals:     u.FitnessGoals,
		ProfileImage:     u.ProfileImage,
	}
}

func NewUserProfiles(users []models.User) []UserProfile {
	out := make([]UserProfile, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserProfile(u))
	}
	return out
}

// RegisterInput is the registration payload. Password is write-only: it is
// handed to the service for hashing and never stored or echoed as plaintext.
type RegisterInput struct {
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	Password         string       `json:"password"`
	FirstName        string       `json:"first_name"`
	LastName         string       `json:"last_name"`
	Role             models.Role  `json:"role"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	City             string       `json:"city"`
	BirthDate        *models.Date `json:"birth_date"`
	EmergencyContact string       `json:"emergency_contact"`
	EmergencyPhone   string       `json:"emergency_phone"`
	FitnessGoals     string       `json:"fitness_goals"`
	ProfileImage     string       `json:"profile_image"`
}

func (in RegisterInput) Validate() error {
	var errs validate.Errs
	if e := validate.Required("username", in.Username); e != nil {
		errs = append(errs, *e)
	} else if len(in.Username) < 3 {
		errs.Add("username", "must be at least 3 characters")
	}
	if e := validate.Required("email", in.Email); e != nil {
		errs = append(errs, *e)
	} else if e := validate.Email("email", in.Email); e != nil {
		errs = append(errs, *e)
	}
	if len(in.Password) < 8 {
		errs.Add("password", "must be at least 8 characters")
	}
	if in.Role != "" && in.Role != models.RoleMember && in.Role != models.RoleGymOwner {
		errs.Add("role", "must be member or gym_owner")
	}
	return errs.OrNil()
}

// ToModel builds the entity without any password material; the caller hashes
// the plaintext separately.
func (in RegisterInput) ToModel() models.User {
	role := in.Role
	if role == "" {
		role = models.RoleMember
	}
	return models.User{
		Username:         in.Username,
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Role:             role,
		Phone:            in.Phone,
		Address:          in.Address,
		City:             in.City,
		BirthDate:        in.BirthDate,
		EmergencyContact: in.EmergencyContact,
		EmergencyPhone:   in.EmergencyPhone,
		FitnessGoals:     in.FitnessGoals,
		ProfileImage:     in.ProfileImage,
	}
}

// UserUpdate is a partial update: only fields present in the payload are
// applied. Role and Password are deliberately not applied here; the service
// decides whether the caller may change them.
type UserUpdate struct {
	Username         *string      `json:"username"`
	Email            *string      `json:"email"`
	Password         *string      `json:"password"`
	FirstName        *string      `json:"first_name"`
	LastName         *string      `json:"last_name"`
	Role             *models.Role `json:"role"`
	Phone            *string      `json:"phone"`
	Address          *string      `json:"address"`
	City             *string      `json:"city"`
	BirthDate        *models.Date `json:"birth_date"`
	EmergencyContact *string      `json:"emergency_contact"`
	EmergencyPhone   *string      `json:"emergency_phone"`
	FitnessGoals     *string      `json:"fitness_goals"`
	ProfileImage     *string      `json:"profile_image"`
}

func (in UserUpdate) Validate() error {
	var errs validate.Errs
	if in.Username != nil && len(*in.Username) < 3 {
		errs.Add("username", "must be at least 3 characters")
	}
	if in.Email != nil {
		if e := validate.Required("email", *in.Email); e != nil {
			errs = append(errs, *e)
		} else if e := validate.Email("email", *in.Email); e != nil {
			errs = append(errs, *e)
		}
	}
	if in.Password != nil && len(*in.Password) < 8 {
		errs.Add("password", "must be at least 8 characters")
	}
	if in.Role != nil && !in.Role.Valid() {
		errs.Add("role", "unknown role")
	}
	return errs.OrNil()
}

func (in UserUpdate) Apply(u *models.User) {
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if in.Address != nil {
		u.Address = *in.Address
	}
	if in.City != nil {
		u.City = *in.City
	}
	if in.BirthDate != nil {
		u.BirthDate = in.BirthDate
	}
	if in.EmergencyContact != nil {
		u.EmergencyContact = *in.EmergencyContact
	}
	if in.EmergencyPhone != nil {
		u.EmergencyPhone = *in.EmergencyPhone
	}
	if in.FitnessGoals != nil {
		u.FitnessGoals = *in.FitnessGoals
	}
	if in.ProfileImage != nil {
		u.ProfileImage = *in.ProfileImage
	}
}
