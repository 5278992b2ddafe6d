package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"thesishub-backend/internal/domain"
	"thesishub-backend/internal/logger"
	"thesishub-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps business errors to HTTP statuses. ErrInvalidTransition
// maps to 409 so a double-clicking UI can refresh instead of failing hard.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrRequesterNotFound),
		errors.Is(err, domain.ErrThesisNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrShelfFull):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("Internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
