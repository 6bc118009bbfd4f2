package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ricirt/portfolio-api/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
// Anything unrecognised becomes an opaque 500; its detail stays in the logs.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, domain.ErrUnavailable.Error())
	case errors.Is(err, domain.ErrClientNameRequired):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func databaseState(connected bool) string {
	if connected {
		return "connected"
	}
	return "disconnected"
}
