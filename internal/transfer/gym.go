package transfer

import (
	"time"

	"github.com/ekaraca/gymhub-backend/internal/api/validate"
	"github.com/ekaraca/gymhub-backend/internal/models"
)

// GymDetail exposes every gym field plus the derived owner_email; the owner
// reference itself is read-only on the wire (creation stamps it server-side).
type GymDetail struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Owner         string           `json:"owner"`
	OwnerUsername string           `json:"owner_username"`
	OwnerEmail    string           `json:"owner_email"`
	Description   string           `json:"description"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	Area          string           `json:"area"`
	Phone         string           `json:"phone"`
	Amenities     []string         `json:"amenities"`
	Hours         string           `json:"hours"`
	ImageURL      string           `json:"image_url"`
	Status        models.GymStatus `json:"status"`
	Capacity      *int             `json:"capacity"`
	Featured      bool             `json:"featured"`
	CreatedAt     time.Time        `json:"created_at"`
}

func NewGymDetail(g models.Gym) GymDetail {
	amenities := g.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return GymDetail{
		ID:            g.ID,
		Name:          g.Name,
		Owner:         g.OwnerID,
		OwnerUsername: g.OwnerUsername,
		OwnerEmail:    g.OwnerEmail,
		Description:   g.Description,
		Address:       g.Address,
		City:          g.City,
		Area:          g.Area,
		Phone:         g.Phone,
		Amenities:     amenities,
		Hours:         g.Hours,
		ImageURL:      g.ImageURL,
		Status:        g.Status,
		Capacity:      g.Capacity,
		Featured:      g.Featured,
		CreatedAt:     g.CreatedAt,
	}
}

func NewGymDetails(gyms []models.Gym) []GymDetail {
	out := make([]GymDetail, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, NewGymDetail(g))
	}
	return out
}

// GymInput is the creation payload. Any owner value a client supplies is
// ignored; the authenticated caller becomes the owner.
type GymInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	City        string           `json:"city"`
	Area        string           `json:"area"`
	Phone       string           `json:"phone"`
	Amenities   []string         `json:"amenities"`
	Hours       string           `json:"hours"`
	ImageURL    string           `json:"image_url"`
	Status      models.GymStatus `json:"status"`
	Capacity    *int             `json:"capacity"`
	Featured    bool             `json:"featured"`
}

func (in GymInput) Validate() error {
	var errs validate.Errs
	for field, v := range map[string]string{"name": in.Name, "address": in.Address, "city": in.City} {
		if e := validate.Required(field, v); e != nil {
			errs = append(errs, *e)
		}
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.Add("status", "must be pending, active or suspended")
	}
	if in.Capacity != nil {
		if e := validate.MinInt("capacity", int64(*in.Capacity), 1); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs.OrNil()
}

func (in GymInput) ToModel() models.Gym {
	status := in.Status
	if status == "" {
		status = models.GymPending
	}
	return models.Gym{
		Name:        in.Name,
		Description: in.Description,
		Address:     in.Address,
		City:        in.City,
		Area:        in.Area,
		Phone:       in.Phone,
		Amenities:   in.Amenities,
		Hours:       in.Hours,
		ImageURL:    in.ImageURL,
		Status:      status,
		Capacity:    in.Capacity,
		Featured:    in.Featured,
	}
}

// GymUpdate applies only the fields present in the payload. The owner
// reference and creation timestamp are not updatable.
type GymUpdate struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Address     *string           `json:"address"`
	City        *string           `json:"city"`
	Area        *string           `json:"area"`
	Phone       *string           `json:"phone"`
	Amenities   *[]string         `json:"amenities"`
	Hours       *string           `json:"hours"`
	ImageURL    *string           `json:"image_url"`
	Status      *models.GymStatus `json:"status"`
	Capacity    *int              `json:"capacity"`
	Featured    *bool             `json:"featured"`
}

func (in GymUpdate) Validate() error {
	var errs validate.Errs
	for field, v := range map[string]*string{"name": in.Name, "address": in.Address, "city": in.City} {
		if v != nil {
			if e := validate.Required(field, *v); e != nil {
				errs = append(errs, *e)
			}
		}
	}
	if in.Status != nil && !in.Status.Valid() {
		errs.Add("status", "must be pending, active or suspended")
	}
	if in.Capacity != nil {
		if e := validate.MinInt("capacity", int64(*in.Capacity), 1); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs.OrNil()
}

func (in GymUpdate) Apply(g *models.Gym) {
	if in.Name != nil {
		g.Name = *in.Name
	}
	if in.Description != nil {
		g.Description = *in.Description
	}
	if in.Address != nil {
		g.Address = *in.Address
	}
	if in.City != nil {
		g.City = *in.City
	}
	if in.Area != nil {
		g.Area = *in.Area
	}
	if in.Phone != nil {
		g.Phone = *in.Phone
	}
	if in.Amenities != nil {
		g.Amenities = *in.Amenities
	}
	if in.Hours != nil {
		g.Hours = *in.Hours
	}
	if in.ImageURL != nil {
		g.ImageURL = *in.ImageURL
	}
	if in.Status != nil {
		g.Status = *in.Status
	}
	if in.Capacity != nil {
		g.Capacity = in.Capacity
	}
	if in.Featured != nil {
		g.Featured = *in.Featured
	}
}
