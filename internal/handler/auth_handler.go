package handler

import (
	"errors"
	"net/http"

	"student-wellness-api/internal/auth"
	"student-wellness-api/internal/model"
	"student-wellness-api/internal/store"
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Contact   string `json:"contact"`
		Course    string `json:"course"`
		Level     int    `json:"level"`
		RollID    string `json:"roll_id"`
	}
	if !decode(w, r, &req) {
		return
	}

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" ||
		req.Contact == "" || req.Course == "" || req.RollID == "" {
		writeError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.serverError(w, "hash password", err)
		return
	}

	u := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Contact:      req.Contact,
		Course:       req.Course,
		Level:        req.Level,
		RollID:       req.RollID,
	}

	if err := h.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusBadRequest, "user already exists with that email or roll ID")
			return
		}
		h.serverError(w, "create user", err)
		return
	}

	tok, err := auth.MakeToken(u.ID, h.secret)
	if err != nil {
		h.serverError(w, "make token", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"user_id": u.ID,
		"token":   tok,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password required")
		return
	}

	// unknown email and wrong password answer identically
	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusBadRequest, "invalid credentials")
			return
		}
		h.serverError(w, "lookup user", err)
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		writeError(w, http.StatusBadRequest, "invalid credentials")
		return
	}

	tok, err := auth.MakeToken(u.ID, h.secret)
	if err != nil {
		h.serverError(w, "make token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"user_id": u.ID,
		"token":   tok,
	})
}
