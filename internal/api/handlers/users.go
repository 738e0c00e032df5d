package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekaraca/gymhub-backend/internal/api/httpx"
	"github.com/ekaraca/gymhub-backend/internal/services"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewUserProfiles(users))
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in transfer.RegisterInput
	if !decodeJSON(w, r, &in) {
		return
	}
	u, err := h.svc.Register(in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, transfer.NewUserProfile(u))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewUserProfile(u))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var in transfer.UserUpdate
	if !decodeJSON(w, r, &in) {
		return
	}
	u, err := h.svc.Update(p, chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewUserProfile(u))
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(p, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	u, err := h.svc.Get(p.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewUserProfile(u))
}

// UpdateMe applies a partial update to the caller's own record.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var in transfer.UserUpdate
	if !decodeJSON(w, r, &in) {
		return
	}
	u, err := h.svc.Update(p, p.UserID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewUserProfile(u))
}
