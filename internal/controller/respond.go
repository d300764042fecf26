// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/Abubaker23alluhaibi/isbyanSystem/internal/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps the typed service errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, err error) {
	var (
		validation  *appErrors.ValidationError
		noTemplate  *appErrors.TemplateNotFoundError
		noCustomers *appErrors.NoCustomersFoundError
		unavailable *appErrors.StoreUnavailableError
	)
	switch {
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &noTemplate), errors.As(err, &noCustomers):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &unavailable):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
