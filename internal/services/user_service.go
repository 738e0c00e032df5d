package services

import (
	"time"

	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/metrics"
	"github.com/ekaraca/gymhub-backend/internal/models"
	repo "github.com/ekaraca/gymhub-backend/internal/repository"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
	"github.com/ekaraca/gymhub-backend/internal/worker"
)

type UserService struct {
	r   repo.Users
	tm  *auth.TokenManager
	aud auditor
}

func NewUserService(r repo.Users, tm *auth.TokenManager, log repo.AuditLogs, wp *worker.Pool) *UserService {
	return &UserService{r: r, tm: tm, aud: auditor{log: log, wp: wp}}
}

// Register creates a user from an open registration. The plaintext password
// never reaches the store: it is hashed here and only the hash is persisted.
func (s *UserService) Register(in transfer.RegisterInput) (models.User, error) {
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}
	u := in.ToModel()
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	u.PasswordHash = hash

	created, err := s.r.Create(u)
	if err != nil {
		return models.User{}, err
	}
	s.aud.record("user", created.ID, created.ID, "created")
	metrics.EntityWrites.WithLabelValues("user", "created").Inc()
	return created, nil
}

type TokenPair struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    time.Duration `json:"expires_in"`
}

// Login accepts the username or the email as identifier.
func (s *UserService) Login(identifier, password string) (TokenPair, error) {
	u, err := s.r.GetByUsername(identifier)
	if err != nil {
		u, err = s.r.GetByEmail(identifier)
	}
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.issuePair(u)
}

// Refresh exchanges a valid refresh token for a new pair. The user row is
// re-read so a role change since issuance takes effect immediately.
func (s *UserService) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := s.tm.ParseRefresh(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.r.GetByID(claims.UserID)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.issuePair(u)
}

func (s *UserService) issuePair(u models.User) (TokenPair, error) {
	access, refresh, exp, err := s.tm.GeneratePair(u.ID, u.Username, string(u.Role))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    time.Until(exp).Truncate(time.Second),
	}, nil
}

func (s *UserService) List() ([]models.User, error) { return s.r.List() }

func (s *UserService) Get(id string) (models.User, error) { return s.r.GetByID(id) }

// Update applies a partial update to the given user. Only the user themselves
// or an admin may update; only an admin may change the role.
func (s *UserService) Update(p auth.Principal, id string, in transfer.UserUpdate) (models.User, error) {
	if p.UserID != id && !p.IsAdmin() {
		return models.User{}, ErrForbidden
	}
	if in.Role != nil && !p.IsAdmin() {
		return models.User{}, ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}

	u, err := s.r.GetByID(id)
	if err != nil {
		return models.User{}, err
	}
	in.Apply(&u)
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if err := s.r.Update(u); err != nil {
		return models.User{}, err
	}
	s.aud.record("user", id, p.UserID, "updated")
	metrics.EntityWrites.WithLabelValues("user", "updated").Inc()
	return s.r.GetByID(id)
}

func (s *UserService) Delete(p auth.Principal, id string) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	if err := s.r.Delete(id); err != nil {
		return err
	}
	s.aud.record("user", id, p.UserID, "deleted")
	metrics.EntityWrites.WithLabelValues("user", "deleted").Inc()
	return nil
}
