package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekaraca/gymhub-backend/internal/api/httpx"
	"github.com/ekaraca/gymhub-backend/internal/services"
	"github.com/ekaraca/gymhub-backend/internal/transfer"
)

type MembershipHandler struct {
	svc *services.MembershipService
}

func NewMembershipHandler(svc *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	ms, err := h.svc.List(p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewMembershipDetails(ms))
}

func (h *MembershipHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Get(p, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewMembershipDetail(m))
}

func (h *MembershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var in transfer.MembershipInput
	if !decodeJSON(w, r, &in) {
		return
	}
	m, err := h.svc.Create(p, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, transfer.NewMembershipDetail(m))
}

func (h *MembershipHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	var in transfer.MembershipUpdate
	if !decodeJSON(w, r, &in) {
		return
	}
	m, err := h.svc.Update(p, chi.URLParam(r, "id"), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, transfer.NewMembershipDetail(m))
}

func (h *MembershipHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
