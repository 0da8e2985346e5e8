package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/inventory"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// serviceError maps core errors onto HTTP responses. Every service
// failure is a recoverable caller error, never a 5xx.
func serviceError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, inventory.ErrLaptopNotFound),
		errors.Is(err, inventory.ErrRequestNotFound):
		status = http.StatusNotFound
	case errors.Is(err, inventory.ErrDuplicateSerial),
		errors.Is(err, inventory.ErrLaptopInTransit),
		errors.Is(err, inventory.ErrLocationMismatch),
		errors.Is(err, inventory.ErrInvalidStateTransition):
		status = http.StatusConflict
	case errors.Is(err, inventory.ErrUnknownUser):
		status = http.StatusUnauthorized
	}
	jsonError(w, status, err.Error())
}
