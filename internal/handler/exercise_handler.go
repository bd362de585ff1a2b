package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"student-wellness-api/internal/model"
	"student-wellness-api/internal/store"
)

// CreateExercise adds an exercise under an assigned student workout.
func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID   string `json:"student_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Repetitions int    `json:"repetitions"`
		Sets        int    `json:"sets"`
		Duration    int    `json:"duration"`
		RestPeriod  int    `json:"rest_period"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "student_id and name are required")
		return
	}

	e := &model.StudentExercise{
		WorkoutID:   chi.URLParam(r, "workoutID"),
		StudentID:   req.StudentID,
		Name:        req.Name,
		Description: req.Description,
		Repetitions: req.Repetitions,
		Sets:        req.Sets,
		Duration:    req.Duration,
		RestPeriod:  req.RestPeriod,
	}

	if err := h.store.CreateExercise(r.Context(), e); err != nil {
		if errors.Is(err, store.ErrBadReference) {
			writeError(w, http.StatusBadRequest, "student workout or student does not exist")
			return
		}
		h.serverError(w, "create exercise", err)
		return
	}

	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	es, err := h.store.ListExercises(r.Context(), chi.URLParam(r, "workoutID"))
	if err != nil {
		h.serverError(w, "list exercises", err)
		return
	}
	writeJSON(w, http.StatusOK, es)
}

func (h *Handler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	var patch model.StudentExercisePatch
	if !decode(w, r, &patch) {
		return
	}

	e, err := h.store.UpdateExercise(r.Context(), chi.URLParam(r, "exerciseID"), patch)
	if err != nil {
		if errors.Is(err, store.ErrEmptyPatch) {
			writeError(w, http.StatusBadRequest, "no valid fields provided for update")
			return
		}
		h.notFoundOr(w, "update exercise", err, "exercise not found")
		return
	}

	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.DeleteExercise(r.Context(), chi.URLParam(r, "exerciseID"))
	if err != nil {
		h.notFoundOr(w, "delete exercise", err, "exercise not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":         "exercise deleted successfully",
		"deletedExercise": e,
	})
}
