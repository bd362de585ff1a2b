package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"student-wellness-api/internal/middleware"
	"student-wellness-api/internal/model"
	"student-wellness-api/internal/store"
)

func (h *Handler) CreateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID string `json:"student_id"`
		Content   string `json:"content"`
		Mood      string `json:"mood"`
		Title     string `json:"title"`
		Color     string `json:"color"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.Content == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "student_id, content and title are required")
		return
	}

	d := &model.DiaryEntry{
		StudentID: req.StudentID,
		Content:   req.Content,
		Mood:      req.Mood,
		Title:     req.Title,
		Color:     req.Color,
	}

	if err := h.store.CreateDiaryEntry(r.Context(), d); err != nil {
		if errors.Is(err, store.ErrBadReference) {
			writeError(w, http.StatusBadRequest, "student does not exist")
			return
		}
		h.serverError(w, "create diary entry", err)
		return
	}

	writeJSON(w, http.StatusCreated, d)
}

func (h *Handler) ListDiaryEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListDiaryEntries(r.Context(), chi.URLParam(r, "studentID"))
	if err != nil {
		h.serverError(w, "list diary entries", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ownedEntry loads the entry and verifies the caller owns it. A foreign
// entry answers 404, not 403, to hide its existence.
func (h *Handler) ownedEntry(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "entryID")
	d, err := h.store.GetDiaryEntry(r.Context(), id)
	if err != nil {
		h.notFoundOr(w, "lookup diary entry", err, "diary entry not found")
		return "", false
	}
	if d.StudentID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "diary entry not found")
		return "", false
	}
	return id, true
}

func (h *Handler) UpdateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var patch model.DiaryEntryPatch
	if !decode(w, r, &patch) {
		return
	}

	id, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	d, err := h.store.UpdateDiaryEntry(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrEmptyPatch) {
			writeError(w, http.StatusBadRequest, "no valid fields provided for update")
			return
		}
		h.notFoundOr(w, "update diary entry", err, "diary entry not found")
		return
	}

	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) DeleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	d, err := h.store.DeleteDiaryEntry(r.Context(), id)
	if err != nil {
		h.notFoundOr(w, "delete diary entry", err, "diary entry not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":      "diary entry deleted successfully",
		"deletedEntry": d,
	})
}
