package auth

import "github.com/ekaraca/gymhub-backend/internal/models"

// Principal is the verified identity of the caller. The auth middleware builds
// it from access-token claims; handlers pass it explicitly into services, which
// never read identity from ambient request state.
type Principal struct {
	UserID   string
	Username string
	Role     models.Role
}

func (p Principal) IsAdmin() bool { return p.Role == models.RoleAdmin }
