package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"student-wellness-api/internal/model"
	"student-wellness-api/internal/store"
)

func (h *Handler) CreateCounselor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName      string          `json:"first_name"`
		LastName       string          `json:"last_name"`
		Email          string          `json:"email"`
		Specialization string          `json:"specialization"`
		Location       string          `json:"location"`
		Availability   json.RawMessage `json:"availability"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "first_name, last_name and email are required")
		return
	}

	c := &model.Counselor{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Specialization: req.Specialization,
		Location:       req.Location,
		Availability:   req.Availability,
	}

	if err := h.store.CreateCounselor(r.Context(), c); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusBadRequest, "a counselor with the given email already exists")
			return
		}
		h.serverError(w, "create counselor", err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) ListCounselors(w http.ResponseWriter, r *http.Request) {
	cs, err := h.store.ListCounselors(r.Context())
	if err != nil {
		h.serverError(w, "list counselors", err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *Handler) GetCounselor(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.GetCounselor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFoundOr(w, "get counselor", err, "counselor not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateCounselor takes the id in the body, matching the original API shape.
func (h *Handler) UpdateCounselor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
		model.CounselorPatch
	}
	if !decode(w, r, &req) {
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	c, err := h.store.UpdateCounselor(r.Context(), req.ID, req.CounselorPatch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyPatch):
			writeError(w, http.StatusBadRequest, "no valid fields provided for update")
		case errors.Is(err, store.ErrDuplicate):
			writeError(w, http.StatusBadRequest, "a counselor with the given email already exists")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "counselor not found")
		default:
			h.serverError(w, "update counselor", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteCounselor(w http.ResponseWriter, r *http.Request) {
	c, err := h.store.DeleteCounselor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrBadReference) {
			writeError(w, http.StatusBadRequest, "counselor still has appointments")
			return
		}
		h.notFoundOr(w, "delete counselor", err, "counselor not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":          "counselor deleted successfully",
		"deletedCounselor": c,
	})
}

func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Availability json.RawMessage `json:"availability"`
	}
	if !decode(w, r, &req) {
		return
	}
	if len(req.Availability) == 0 {
		writeError(w, http.StatusBadRequest, "availability is required")
		return
	}

	c, err := h.store.SetAvailability(r.Context(), chi.URLParam(r, "id"), req.Availability)
	if err != nil {
		h.notFoundOr(w, "set availability", err, "counselor not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.store.GetAvailability(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFoundOr(w, "get availability", err, "counselor not found")
		return
	}
	writeJSON(w, http.StatusOK, availability)
}
