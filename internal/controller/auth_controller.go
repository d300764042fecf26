// internal/controller/auth_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Abubaker23alluhaibi/isbyanSystem/internal/service"
)

type AuthController struct {
	AuthService *service.AuthService
}

// Register always refuses: account creation is disabled, the seeded admin
// account is the only way in.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusForbidden, "registration is disabled; use the default admin account")
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	token, user, err := c.AuthService.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrBadCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// Me resolves the bearer token to the current user. It sits outside the auth
// middleware so it can report the precise token failure mode.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")

	user, err := c.AuthService.CurrentUser(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenMissing), errors.Is(err, service.ErrTokenExpired), errors.Is(err, service.ErrTokenInvalid):
			respondError(w, http.StatusUnauthorized, err.Error())
		default:
			respondServiceError(w, err)
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}
