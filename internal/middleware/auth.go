package middleware

import (
	"context"
	"net/http"
	"strings"

	"student-wellness-api/internal/auth"
)

type ctxKey string

const userIDKey ctxKey = "uid"

// UserID returns the authenticated caller's id, or "" outside an
// authenticated request.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}

// Auth requires a valid Bearer token and puts the caller's id on the
// request context. Routes that skip it (signup, login) are grouped
// separately in the router.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if raw == "" || raw == r.Header.Get("Authorization") {
				unauthorized(w, "missing token")
				return
			}

			claims, err := auth.ParseToken(raw, secret)
			if err != nil {
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
