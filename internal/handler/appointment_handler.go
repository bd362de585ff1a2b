package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"student-wellness-api/internal/model"
	"student-wellness-api/internal/store"
)

func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AppointmentTime time.Time `json:"appointmentTime"`
		CounselorID     string    `json:"counselorId"`
		StudentID       string    `json:"studentId"`
		Status          string    `json:"status"`
		Type            string    `json:"type"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
	}
	if !decode(w, r, &req) {
		return
	}

	if req.CounselorID == "" || req.StudentID == "" || req.Title == "" || req.Status == "" || req.Type == "" {
		writeError(w, http.StatusBadRequest, "counselorId, studentId, title, status and type are required")
		return
	}
	if req.AppointmentTime.IsZero() {
		writeError(w, http.StatusBadRequest, "appointmentTime is required")
		return
	}

	if _, err := h.store.GetCounselor(r.Context(), req.CounselorID); err != nil {
		h.notFoundOr(w, "lookup counselor", err, "counselor not found")
		return
	}

	start := req.AppointmentTime.UTC()
	if start.Before(time.Now().UTC()) {
		writeError(w, http.StatusBadRequest, "cannot book appointments for a past date")
		return
	}

	// app-level check for a friendly error; the exclusion constraint
	// backstops concurrent bookings
	if dup, err := h.store.HasConflict(r.Context(), req.CounselorID, start, ""); err != nil {
		h.serverError(w, "conflict check", err)
		return
	} else if dup {
		writeError(w, http.StatusBadRequest, "this time slot is already booked or overlaps with another appointment")
		return
	}

	apt := &model.Appointment{
		AppointmentTime: start,
		CounselorID:     req.CounselorID,
		StudentID:       req.StudentID,
		Status:          req.Status,
		Type:            req.Type,
		Title:           req.Title,
		Description:     req.Description,
	}

	if err := h.store.CreateAppointment(r.Context(), apt); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			// constraint caught a race
			writeError(w, http.StatusBadRequest, "this time slot is already booked or overlaps with another appointment")
		case errors.Is(err, store.ErrBadReference):
			writeError(w, http.StatusBadRequest, "counselor or student does not exist")
		default:
			h.serverError(w, "create appointment", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, apt)
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	apts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		h.serverError(w, "list appointments", err)
		return
	}
	writeJSON(w, http.StatusOK, apts)
}

func (h *Handler) UserAppointments(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "a user ID must be provided")
		return
	}

	apts, err := h.store.UserAppointments(r.Context(), userID)
	if err != nil {
		h.serverError(w, "user appointments", err)
		return
	}
	writeJSON(w, http.StatusOK, apts)
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AppointmentID string `json:"appointmentId"`
		model.AppointmentPatch
	}
	if !decode(w, r, &req) {
		return
	}
	if req.AppointmentID == "" {
		writeError(w, http.StatusBadRequest, "appointmentId is required")
		return
	}

	// the overlap check only runs when the time actually changes
	if req.AppointmentTime != nil {
		apt, err := h.store.GetAppointment(r.Context(), req.AppointmentID)
		if err != nil {
			h.notFoundOr(w, "lookup appointment", err, "appointment not found")
			return
		}

		start := req.AppointmentTime.UTC()
		if start.Before(time.Now().UTC()) {
			writeError(w, http.StatusBadRequest, "cannot update an appointment to a past date")
			return
		}
		*req.AppointmentTime = start

		// same counselor, excluding the appointment being moved
		if dup, err := h.store.HasConflict(r.Context(), apt.CounselorID, start, apt.ID); err != nil {
			h.serverError(w, "conflict check", err)
			return
		} else if dup {
			writeError(w, http.StatusBadRequest, "this time slot is already booked")
			return
		}
	}

	apt, err := h.store.UpdateAppointment(r.Context(), req.AppointmentID, req.AppointmentPatch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmptyPatch):
			writeError(w, http.StatusBadRequest, "no valid fields provided for update")
		case errors.Is(err, store.ErrConflict):
			writeError(w, http.StatusBadRequest, "this time slot is already booked")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "appointment not found")
		default:
			h.serverError(w, "update appointment", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, apt)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	apt, err := h.store.DeleteAppointment(r.Context(), id)
	if err != nil {
		h.notFoundOr(w, "delete appointment", err, "appointment not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":            "appointment deleted successfully",
		"deletedAppointment": apt,
	})
}
