package services

import (
	"errors"
	"testing"

	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/models"
	"github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
)

type fakeGyms struct {
	byID   map[string]models.Gym
	owners map[string]string // owner id -> username
	nextID int
}

func newFakeGyms() *fakeGyms {
	return &fakeGyms{byID: map[string]models.Gym{}, owners: map[string]string{}}
}

func (f *fakeGyms) Create(g models.Gym) (models.Gym, error) {
	f.nextID++
	g.ID = string(rune('a' + f.nextID))
	g.OwnerUsername = f.owners[g.OwnerID]
	f.byID[g.ID] = g
	return g, nil
}

func (f *fakeGyms) GetByID(id string) (models.Gym, error) {
	g, ok := f.byID[id]
	if !ok {
		return models.Gym{}, repository.ErrNotFound
	}
	g.OwnerUsername = f.owners[g.OwnerID]
	return g, nil
}

func (f *fakeGyms) ListByStatus(status models.GymStatus) ([]models.Gym, error) {
	var out []models.Gym
	for _, g := range f.byID {
		if g.Status == status {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGyms) ListByOwnerUsername(username string) ([]models.Gym, error) {
	var out []models.Gym
	for _, g := range f.byID {
		if f.owners[g.OwnerID] == username {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGyms) Update(g models.Gym) error {
	old, ok := f.byID[g.ID]
	if !ok {
		return repository.ErrNotFound
	}
	g.OwnerID = old.OwnerID
	f.byID[g.ID] = g
	return nil
}

func (f *fakeGyms) Delete(id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func seedGyms(f *fakeGyms) {
	f.owners["u1"] = "bob"
	f.byID["g1"] = models.Gym{ID: "g1", Name: "Active Gym", OwnerID: "u1", Status: models.GymActive}
	f.byID["g2"] = models.Gym{ID: "g2", Name: "Pending Gym", OwnerID: "u1", Status: models.GymPending}
}

func TestGymListDefaultsToActive(t *testing.T) {
	f := newFakeGyms()
	seedGyms(f)
	s := NewGymService(f, false, nil, nil)

	gyms, err := s.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(gyms) != 1 || gyms[0].ID != "g1" {
		t.Fatalf("got %v, want only the active gym", gyms)
	}
}

func TestGymListOwnerOverrideIgnoresStatus(t *testing.T) {
	f := newFakeGyms()
	seedGyms(f)
	s := NewGymService(f, false, nil, nil)

	gyms, err := s.List("bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(gyms) != 2 {
		t.Fatalf("got %d gyms, want 2 regardless of status", len(gyms))
	}
}

func TestGymCreatePolicy(t *testing.T) {
	member := auth.Principal{UserID: "m1", Role: models.RoleMember}
	owner := auth.Principal{UserID: "o1", Role: models.RoleGymOwner}
	in := transfer.GymInput{Name: "New Gym", Address: "a", City: "c"}

	gated := NewGymService(newFakeGyms(), false, nil, nil)
	if _, err := gated.Create(member, in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("gated member create: err = %v, want ErrForbidden", err)
	}
	if _, err := gated.Create(owner, in); err != nil {
		t.Fatalf("gated owner create: %v", err)
	}

	open := NewGymService(newFakeGyms(), true, nil, nil)
	if _, err := open.Create(member, in); err != nil {
		t.Fatalf("open member create: %v", err)
	}
}

func TestGymCreateStampsCaller(t *testing.T) {
	f := newFakeGyms()
	s := NewGymService(f, false, nil, nil)
	p := auth.Principal{UserID: "o9", Role: models.RoleGymOwner}

	g, err := s.Create(p, transfer.GymInput{Name: "Mine", Address: "a", City: "c"})
	if err != nil {
		t.Fatal(err)
	}
	if g.OwnerID != "o9" {
		t.Fatalf("owner = %q, want the caller", g.OwnerID)
	}
	if g.Status != models.GymPending {
		t.Fatalf("status = %q, want pending default", g.Status)
	}
}

func TestGymDeleteOwnerOrAdmin(t *testing.T) {
	f := newFakeGyms()
	seedGyms(f)
	s := NewGymService(f, false, nil, nil)

	stranger := auth.Principal{UserID: "zz", Role: models.RoleGymOwner}
	if err := s.Delete(stranger, "g1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete: err = %v, want ErrForbidden", err)
	}
	admin := auth.Principal{UserID: "root", Role: models.RoleAdmin}
	if err := s.Delete(admin, "g1"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	ownerP := auth.Principal{UserID: "u1", Role: models.RoleGymOwner}
	if err := s.Delete(ownerP, "g2"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := s.Delete(admin, "g2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: err = %v, want ErrNotFound", err)
	}
}
