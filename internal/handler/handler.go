package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"student-wellness-api/internal/middleware"
	"student-wellness-api/internal/store"
)

type Handler struct {
	store  *store.Store
	secret string
	logger *slog.Logger
}

func New(st *store.Store, secret string, logger *slog.Logger) *Handler {
	return &Handler{store: st, secret: secret, logger: logger}
}

// Routes wires the full HTTP surface. Signup and login are open and
// rate limited; everything else requires a Bearer token.
func (h *Handler) Routes(rl *middleware.RateLimiter, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(h.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rl))
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.secret))

		r.Post("/book-appointment", h.BookAppointment)
		r.Get("/list-appointments", h.ListAppointments)
		r.Get("/user-appointments", h.UserAppointments)
		r.Patch("/update-appointment", h.UpdateAppointment)
		r.Delete("/delete-appointments/{id}", h.DeleteAppointment)

		r.Post("/counselors", h.CreateCounselor)
		r.Get("/counselors", h.ListCounselors)
		r.Patch("/counselors", h.UpdateCounselor)
		r.Get("/counselors/{id}", h.GetCounselor)
		r.Delete("/counselors/{id}", h.DeleteCounselor)
		r.Patch("/counselors/{id}/availability", h.SetAvailability)
		r.Get("/counselors/{id}/availability", h.GetAvailability)

		r.Post("/thought-diaries", h.CreateDiaryEntry)
		r.Get("/thought-diaries/{studentID}", h.ListDiaryEntries)
		r.Patch("/thought-diaries/{entryID}", h.UpdateDiaryEntry)
		r.Delete("/thought-diaries/{entryID}", h.DeleteDiaryEntry)

		r.Post("/workouts", h.CreateWorkout)
		r.Get("/workouts", h.ListWorkouts)
		r.Get("/workouts/{id}", h.GetWorkout)
		r.Patch("/workouts/{id}", h.UpdateWorkout)
		r.Delete("/workouts/{id}", h.DeleteWorkout)

		r.Post("/student-workouts", h.CreateStudentWorkout)
		r.Get("/student-workouts", h.ListStudentWorkouts)
		r.Patch("/student-workouts/{id}", h.UpdateStudentWorkout)

		r.Post("/student-workouts/{workoutID}/exercises", h.CreateExercise)
		r.Get("/student-workouts/{workoutID}/exercises", h.ListExercises)
		r.Patch("/student-exercises/{exerciseID}", h.UpdateExercise)
		r.Delete("/student-exercises/{exerciseID}", h.DeleteExercise)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// serverError logs the real cause and hides it from the client.
func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// notFoundOr handles the common tail of a store call: not-found becomes a
// 404 with the given message, anything else a 500.
func (h *Handler) notFoundOr(w http.ResponseWriter, op string, err error, msg string) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, msg)
		return
	}
	h.serverError(w, op, err)
}
