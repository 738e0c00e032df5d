package services

import (
	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/metrics"
	"github.com/ekaraca/gymhub-backend/internal/models"
	repo "github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
	"github.com/ekaraca/gymhub-backend/internal/worker"
)

type GymService struct {
	r          repo.Gyms
	createOpen bool
	aud        auditor
}

// NewGymService: createOpen selects the gym-creation policy. When false,
// creation is gated to gym_owner/admin; when true any authenticated user may
// create a gym.
func NewGymService(r repo.Gyms, createOpen bool, log repo.AuditLogs, wp *worker.Pool) *GymService {
	return &GymService{r: r, createOpen: createOpen, aud: auditor{log: log, wp: wp}}
}

// List is open to anonymous callers. The default view shows only active gyms;
// an ownerUsername filter switches to that owner's gyms regardless of status,
// which is how an owner reviews their own pending or suspended listings.
func (s *GymService) List(ownerUsername string) ([]models.Gym, error) {
	if ownerUsername != "" {
		return s.r.ListByOwnerUsername(ownerUsername)
	}
	return s.r.ListByStatus(models.GymActive)
}

func (s *GymService) Get(id string) (models.Gym, error) { return s.r.GetByID(id) }

// Create stamps the caller as owner; any owner value in the payload was
// already discarded by the transfer layer.
func (s *GymService) Create(p auth.Principal, in transfer.GymInput) (models.Gym, error) {
	if !s.createOpen && p.Role != models.RoleGymOwner && p.Role != models.RoleAdmin {
		return models.Gym{}, ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return models.Gym{}, err
	}
	g := in.ToModel()
	g.OwnerID = p.UserID

	created, err := s.r.Create(g)
	if err != nil {
		return models.Gym{}, err
	}
	s.aud.record("gym", created.ID, p.UserID, "created")
	metrics.EntityWrites.WithLabelValues("gym", "created").Inc()
	return created, nil
}

// Update is open to any authenticated caller; status transitions are plain
// field writes with no state machine behind them.
func (s *GymService) Update(p auth.Principal, id string, in transfer.GymUpdate) (models.Gym, error) {
	if err := in.Validate(); err != nil {
		return models.Gym{}, err
	}
	g, err := s.r.GetByID(id)
	if err != nil {
		return models.Gym{}, err
	}
	in.Apply(&g)
	if err := s.r.Update(g); err != nil {
		return models.Gym{}, err
	}
	s.aud.record("gym", id, p.UserID, "updated")
	metrics.EntityWrites.WithLabelValues("gym", "updated").Inc()
	return s.r.GetByID(id)
}

// Delete is restricted to the gym's owner or an admin.
func (s *GymService) Delete(p auth.Principal, id string) error {
	g, err := s.r.GetByID(id)
	if err != nil {
		return err
	}
	if g.OwnerID != p.UserID && !p.IsAdmin() {
		return ErrForbidden
	}
	if err := s.r.Delete(id); err != nil {
		return err
	}
	s.aud.record("gym", id, p.UserID, "deleted")
	metrics.EntityWrites.WithLabelValues("gym", "deleted").Inc()
	return nil
}
