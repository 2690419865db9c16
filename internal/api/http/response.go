package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/logger"
)

// envelope is the JSON body of every API response: {"success": true, ...}
// on success and {"error": "..."} on failure.
type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, message string, fields envelope) {
	body := envelope{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"error": message})
}

// writeServiceError maps an error kind to its status code.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidRentalPeriod),
		errors.Is(err, domain.ErrVehicleNotAvailable),
		errors.Is(err, domain.ErrCustomerNotEligible):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
