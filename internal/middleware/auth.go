package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type ctxKey string

const ctxUserIDKey ctxKey = "auth_user_id"

// RequireAuth validates the Authorization bearer token and stores the
// authenticated user ID in the request context.
func RequireAuth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, service.ErrTokenMissing)
				return
			}

			userID, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user's ID from the request context.
func UserID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value(ctxUserIDKey).(int)
	return id, ok
}

func unauthorized(w http.ResponseWriter, err error) {
	msg := service.ErrTokenInvalid.Error()
	if errors.Is(err, service.ErrTokenMissing) || errors.Is(err, service.ErrTokenExpired) {
		msg = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
