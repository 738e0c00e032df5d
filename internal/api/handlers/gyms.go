package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekaraca/gymhub-backend/internal/api/httpx"
	"github.com/ekaraca/gymhub-backend/internal/services"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
)

type GymHandler struct {
	svc *services.GymService
}

func NewGymHandler(svc *services.GymService) *GymHandler {
	return &GymHandler{svc: svc}
}

// List is open to anonymous callers; see GymService.List for the
// owner_username override semantics.
func (h *GymHandler) List(w http.ResponseWriter, r *http.Request) {
	gyms, err := h.svc.List(r.URL.Query().Get("owner_username"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewGymDetails(gyms))
}

func (h *GymHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewGymDetail(g))
}

func (h *GymHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var in transfer.GymInput
	if !decodeJSON(w, r, &in) {
		return
	}
	g, err := h.svc.Create(p, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, transfer.NewGymDetail(g))
}

func (h *GymHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var in transfer.GymUpdate
	if !decodeJSON(w, r, &in) {
		return
	}
	g, err := h.svc.Update(p, chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewGymDetail(g))
}

func (h *GymHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
