package transfer

import (
	"time"

	"github.com/ekaraca/gymhub-backend/internal/api/validate"
	"github.com/ekaraca/gymhub-backend/internal/models"
)

type MembershipDetail struct {
	ID              string                  `json:"id"`
	User            string                  `json:"user"`
	UserEmail       string                  `json:"user_email"`
	PlanType        models.PlanType         `json:"plan_type"`
	Status          models.MembershipStatus `json:"status"`
	TotalVisits     int                     `json:"total_visits"`
	RemainingVisits int                     `json:"remaining_visits"`
	Price           string                  `json:"price"`
	PurchaseDate    models.Date             `json:"purchase_date"`
	ExpiryDate      models.Date             `json:"expiry_date"`
	CreatedAt       time.Time               `json:"created_at"`
}

func NewMembershipDetail(m models.Membership) MembershipDetail {
	return MembershipDetail{
		ID:              m.ID,
		User:            m.UserID,
		UserEmail:       m.UserEmail,
		PlanType:        m.PlanType,
		Status:          m.Status,
		TotalVisits:     m.TotalVisits,
		RemainingVisits: m.RemainingVisits,
		Price:           m.Price,
		PurchaseDate:    m.PurchaseDate,
		ExpiryDate:      m.ExpiryDate,
		CreatedAt:       m.CreatedAt,
	}
}

func NewMembershipDetails(ms []models.Membership) []MembershipDetail {
	out := make([]MembershipDetail, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewMembershipDetail(m))
	}
	return out
}

// MembershipInput is the purchase payload. Any user value a client supplies
// is ignored; the authenticated caller becomes the holder.
type MembershipInput struct {
	PlanType        models.PlanType         `json:"plan_type"`
	Status          models.MembershipStatus `json:"status"`
	TotalVisits     int                     `json:"total_visits"`
	RemainingVisits int                     `json:"remaining_visits"`
	Price           string                  `json:"price"`
	PurchaseDate    *models.Date            `json:"purchase_date"`
	ExpiryDate      *models.Date            `json:"expiry_date"`
}

func (in MembershipInput) Validate() error {
	var errs validate.Errs
	if !in.PlanType.Valid() {
		errs.Add("plan_type", "must be classic or professional")
	}
	if in.Status != "" && !in.Status.Valid() {
		errs.Add("status", "must be active, expired or cancelled")
	}
	if e := validate.MinInt("total_visits", int64(in.TotalVisits), 1); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MinInt("remaining_visits", int64(in.RemainingVisits), 0); e != nil {
		errs = append(errs, *e)
	}
	if in.RemainingVisits > in.TotalVisits {
		errs.Add("remaining_visits", "must not exceed total_visits")
	}
	if e := validate.Required("price", in.Price); e != nil {
		errs = append(errs, *e)
	} else if e := validate.Decimal("price", in.Price); e != nil {
		errs = append(errs, *e)
	}
	if in.PurchaseDate == nil {
		errs.Add("purchase_date", "required")
	}
	if in.ExpiryDate == nil {
		errs.Add("expiry_date", "required")
	}
	return errs.OrNil()
}

func (in MembershipInput) ToModel() models.Membership {
	status := in.Status
	if status == "" {
		status = models.MembershipActive
	}
	m := models.Membership{
		PlanType:        in.PlanType,
		Status:          status,
		TotalVisits:     in.TotalVisits,
		RemainingVisits: in.RemainingVisits,
		Price:           in.Price,
	}
	if in.PurchaseDate != nil {
		m.PurchaseDate = *in.PurchaseDate
	}
	if in.ExpiryDate != nil {
		m.ExpiryDate = *in.ExpiryDate
	}
	return m
}

// MembershipUpdate applies only the fields present in the payload; the holder
// reference is not updatable.
type MembershipUpdate struct {
	PlanType        *models.PlanType         `json:"plan_type"`
	Status          *models.MembershipStatus `json:"status"`
	TotalVisits     *int                     `json:"total_visits"`
	RemainingVisits *int                     `json:"remaining_visits"`
	Price           *string                  `json:"price"`
	PurchaseDate    *models.Date             `json:"purchase_date"`
	ExpiryDate      *models.Date             `json:"expiry_date"`
}

func (in MembershipUpdate) Validate() error {
	var errs validate.Errs
	if in.PlanType != nil && !in.PlanType.Valid() {
		errs.Add("plan_type", "must be classic or professional")
	}
	if in.Status != nil && !in.Status.Valid() {
		errs.Add("status", "must be active, expired or cancelled")
	}
	if in.TotalVisits != nil {
		if e := validate.MinInt("total_visits", int64(*in.TotalVisits), 1); e != nil {
			errs = append(errs, *e)
		}
	}
	if in.RemainingVisits != nil {
		if e := validate.MinInt("remaining_visits", int64(*in.RemainingVisits), 0); e != nil {
			errs = append(errs, *e)
		}
	}
	if in.Price != nil {
		if e := validate.Decimal("price", *in.Price); e != nil {
			errs = append(errs, *e)
		}
	}
	return errs.OrNil()
}

// Apply mutates the entity and re-checks the visit-credit bound, which can
// only be verified once both counters are known.
func (in MembershipUpdate) Apply(m *models.Membership) error {
	if in.PlanType != nil {
		m.PlanType = *in.PlanType
	}
	if in.Status != nil {
		m.Status = *in.Status
	}
	if in.TotalVisits != nil {
		m.TotalVisits = *in.TotalVisits
	}
	if in.RemainingVisits != nil {
		m.RemainingVisits = *in.RemainingVisits
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
	if in.PurchaseDate != nil {
		m.PurchaseDate = *in.PurchaseDate
	}
	if in.ExpiryDate != nil {
		m.ExpiryDate = *in.ExpiryDate
	}
	if m.RemainingVisits > m.TotalVisits {
		var errs validate.Errs
		errs.Add("remaining_visits", "must not exceed total_visits")
		return errs
	}
	return nil
}
