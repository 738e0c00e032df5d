package services

import (
	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/metrics"
	"github.com/ekaraca/gymhub-backend/internal/models"
	repo "github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
	"github.com/ekaraca/gymhub-backend/internal/worker"
)

// MembershipService is strictly per-user: every query is scoped to the
// caller, so another user's memberships are indistinguishable from missing
// rows.
type MembershipService struct {
	r   repo.Memberships
	aud auditor
}

func NewMembershipService(r repo.Memberships, log repo.AuditLogs, wp *worker.Pool) *MembershipService {
	return &MembershipService{r: r, aud: auditor{log: log, wp: wp}}
}

func (s *MembershipService) List(p auth.Principal) ([]models.Membership, error) {
	return s.r.ListByUser(p.UserID)
}

func (s *MembershipService) Get(p auth.Principal, id string) (models.Membership, error) {
	return s.r.GetForUser(id, p.UserID)
}

// Create stamps the caller as holder; a user value in the payload was already
// discarded by the transfer layer.
func (s *MembershipService) Create(p auth.Principal, in transfer.MembershipInput) (models.Membership, error) {
	if err := in.Validate(); err != nil {
		return models.Membership{}, err
	}
	m := in.ToModel()
	m.UserID = p.UserID

	created, err := s.r.Create(m)
	if err != nil {
		return models.Membership{}, err
	}
	s.aud.record("membership", created.ID, p.UserID, "created")
	metrics.EntityWrites.WithLabelValues("membership", "created").Inc()
	return created, nil
}

func (s *MembershipService) Update(p auth.Principal, id string, in transfer.MembershipUpdate) (models.Membership, error) {
	if err := in.Validate(); err != nil {
		return models.Membership{}, err
	}
	m, err := s.r.GetForUser(id, p.UserID)
	if err != nil {
		return models.Membership{}, err
	}
	if err := in.Apply(&m); err != nil {
		return models.Membership{}, err
	}
	if err := s.r.UpdateForUser(m); err != nil {
		return models.Membership{}, err
	}
	s.aud.record("membership", id, p.UserID, "updated")
	metrics.EntityWrites.WithLabelValues("membership", "updated").Inc()
	return s.r.GetForUser(id, p.UserID)
}

func (s *MembershipService) Delete(p auth.Principal, id string) error {
	if err := s.r.DeleteForUser(id, p.UserID); err != nil {
		return err
	}
	s.aud.record("membership", id, p.UserID, "deleted")
	metrics.EntityWrites.WithLabelValues("membership", "deleted").Inc()
	return nil
}
