package api_test

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ekaraca/gymhub-backend/internal/models"
	"github.com/ekaraca/gymhub-backend/internal/repository"
)

// memStore backs the repository interfaces for router tests so the full
// endpoint layer runs without Postgres.
type memStore struct {
	mu          sync.Mutex
	users       map[string]models.User
	gyms        map[string]models.Gym
	memberships map[string]models.Membership
	audits      []models.AuditLog
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]models.User{},
		gyms:        map[string]models.Gym{},
		memberships: map[string]models.Membership{},
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, e := range r.s.users {
		if e.Username == u.Username || e.Email == u.Email {
			return models.User{}, repository.ErrConflict
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = u
	return u, nil
}

func (r memUsers) GetByID(id string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r memUsers) GetByUsername(username string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r memUsers) GetByEmail(email string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r memUsers) List() ([]models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}

func (r memUsers) Update(u models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, e := range r.s.users {
		if id != u.ID && (e.Username == u.Username || e.Email == u.Email) {
			return repository.ErrConflict
		}
	}
	u.CreatedAt = old.CreatedAt
	u.UpdatedAt = time.Now()
	r.s.users[u.ID] = u
	return nil
}

func (r memUsers) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

type memGyms struct{ s *memStore }

func (r memGyms) join(g models.Gym) models.Gym {
	if owner, ok := r.s.users[g.OwnerID]; ok {
		g.OwnerUsername = owner.Username
		g.OwnerEmail = owner.Email
	}
	return g
}

func (r memGyms) Create(g models.Gym) (models.Gym, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.CreatedAt = time.Now()
	r.s.gyms[g.ID] = g
	return r.join(g), nil
}

func (r memGyms) GetByID(id string) (models.Gym, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.gyms[id]
	if !ok {
		return models.Gym{}, repository.ErrNotFound
	}
	return r.join(g), nil
}

func (r memGyms) ListByStatus(status models.GymStatus) ([]models.Gym, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Gym
	for _, g := range r.s.gyms {
		if g.Status == status {
			out = append(out, r.join(g))
		}
	}
	return out, nil
}

func (r memGyms) ListByOwnerUsername(username string) ([]models.Gym, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Gym
	for _, g := range r.s.gyms {
		j := r.join(g)
		if j.OwnerUsername == username {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r memGyms) Update(g models.Gym) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.gyms[g.ID]
	if !ok {
		return repository.ErrNotFound
	}
	g.OwnerID = old.OwnerID
	g.CreatedAt = old.CreatedAt
	r.s.gyms[g.ID] = g
	return nil
}

func (r memGyms) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.gyms[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.gyms, id)
	return nil
}

type memMemberships struct{ s *memStore }

func (r memMemberships) join(m models.Membership) models.Membership {
	if u, ok := r.s.users[m.UserID]; ok {
		m.UserEmail = u.Email
	}
	return m
}

func (r memMemberships) Create(m models.Membership) (models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	r.s.memberships[m.ID] = m
	return r.join(m), nil
}

func (r memMemberships) GetForUser(id, userID string) (models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.memberships[id]
	if !ok || m.UserID != userID {
		return models.Membership{}, repository.ErrNotFound
	}
	return r.join(m), nil
}

func (r memMemberships) ListByUser(userID string) ([]models.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Membership
	for _, m := range r.s.memberships {
		if m.UserID == userID {
			out = append(out, r.join(m))
		}
	}
	return out, nil
}

func (r memMemberships) UpdateForUser(m models.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	old, ok := r.s.memberships[m.ID]
	if !ok || old.UserID != m.UserID {
		return repository.ErrNotFound
	}
	m.CreatedAt = old.CreatedAt
	r.s.memberships[m.ID] = m
	return nil
}

func (r memMemberships) DeleteForUser(id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.memberships[id]
	if !ok || m.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.s.memberships, id)
	return nil
}

type memAudit struct{ s *memStore }

func (r memAudit) Create(l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.CreatedAt = time.Now()
	r.s.audits = append(r.s.audits, l)
	return nil
}

func (s *memStore) auditCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.audits)
}

func (s *memStore) storedUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}
