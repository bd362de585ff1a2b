package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"student-wellness-api/internal/model"
	"student-wellness-api/internal/store"
)

func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
		Duration    int    `json:"duration"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	wk := &model.Workout{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Duration:    req.Duration,
	}

	if err := h.store.CreateWorkout(r.Context(), wk); err != nil {
		h.serverError(w, "create workout", err)
		return
	}

	writeJSON(w, http.StatusCreated, wk)
}

func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	ws, err := h.store.ListWorkouts(r.Context())
	if err != nil {
		h.serverError(w, "list workouts", err)
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	wk, err := h.store.GetWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.notFoundOr(w, "get workout", err, "workout not found")
		return
	}
	writeJSON(w, http.StatusOK, wk)
}

func (h *Handler) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	var patch model.WorkoutPatch
	if !decode(w, r, &patch) {
		return
	}

	wk, err := h.store.UpdateWorkout(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrEmptyPatch) {
			writeError(w, http.StatusBadRequest, "no valid fields provided for update")
			return
		}
		h.notFoundOr(w, "update workout", err, "workout not found")
		return
	}

	writeJSON(w, http.StatusOK, wk)
}

func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	wk, err := h.store.DeleteWorkout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrBadReference) {
			writeError(w, http.StatusBadRequest, "workout is still assigned to students")
			return
		}
		h.notFoundOr(w, "delete workout", err, "workout not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "workout deleted successfully",
		"deletedWorkout": wk,
	})
}

func (h *Handler) CreateStudentWorkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID string `json:"student_id"`
		WorkoutID string `json:"workout_id"`
		Status    string `json:"status"`
		Feedback  string `json:"feedback"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.WorkoutID == "" {
		writeError(w, http.StatusBadRequest, "student_id and workout_id are required")
		return
	}

	sw := &model.StudentWorkout{
		StudentID: req.StudentID,
		WorkoutID: req.WorkoutID,
		Status:    req.Status,
		Feedback:  req.Feedback,
	}

	if err := h.store.CreateStudentWorkout(r.Context(), sw); err != nil {
		if errors.Is(err, store.ErrBadReference) {
			writeError(w, http.StatusBadRequest, "student or workout does not exist")
			return
		}
		h.serverError(w, "create student workout", err)
		return
	}

	writeJSON(w, http.StatusCreated, sw)
}

func (h *Handler) ListStudentWorkouts(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("studentId")
	if studentID == "" {
		writeError(w, http.StatusBadRequest, "a student ID must be provided")
		return
	}

	sws, err := h.store.ListStudentWorkouts(r.Context(), studentID)
	if err != nil {
		h.serverError(w, "list student workouts", err)
		return
	}
	writeJSON(w, http.StatusOK, sws)
}

func (h *Handler) UpdateStudentWorkout(w http.ResponseWriter, r *http.Request) {
	var patch model.StudentWorkoutPatch
	if !decode(w, r, &patch) {
		return
	}

	sw, err := h.store.UpdateStudentWorkout(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrEmptyPatch) {
			writeError(w, http.StatusBadRequest, "no valid fields provided for update")
			return
		}
		h.notFoundOr(w, "update student workout", err, "student workout not found")
		return
	}

	writeJSON(w, http.StatusOK, sw)
}
