// Package handlers decodes requests, resolves the caller's Principal, and
// maps service errors onto the HTTP error taxonomy: validation 400, missing
// auth 401, wrong role or ownership 403, unknown or out-of-scope id 404.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekaraca/gymhub-backend/internal/api/httpx"
	"github.com/ekaraca/gymhub-backend/internal/api/validate"
	"github.com/ekaraca/gymhub-backend/internal/auth"
	"github.com/ekaraca/gymhub-backend/internal/middleware"
	"github.com/ekaraca/gymhub-backend/internal/services"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "malformed JSON body", nil)
		return false
	}
	return true
}

// principal extracts the Principal the auth middleware verified. Routes that
// reach here without it are a wiring bug, answered as unauthorized.
func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
	}
	return p, ok
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteValidation(w, verrs)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, services.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "forbidden", nil)
	case errors.Is(err, services.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "conflict", "username or email already taken", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
	default:
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", err.Error(), nil)
	}
}
