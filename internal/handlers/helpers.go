package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
	"github.com/mecoding/todo-api/internal/services/category"
)

// ErrorResponse is the error payload shape shared by every endpoint.
type ErrorResponse struct {
	Status    int                  `json:"status"`
	Message   string               `json:"message"`
	Details   string               `json:"details"`
	Timestamp models.LocalDateTime `json:"timestamp"`
	Path      string               `json:"path"`
}

// respondJSON sends data as a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondError sends an ErrorResponse.
func respondError(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	respondJSON(w, status, ErrorResponse{
		Status:    status,
		Message:   message,
		Details:   details,
		Timestamp: models.Now(),
		Path:      r.URL.Path,
	})
}

// respondServiceError maps service-layer errors onto the error taxonomy.
// Unexpected failures get a deliberately generic message so internals are
// not leaked to clients.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, r, http.StatusNotFound, "Resource not found", err.Error())
	case errors.Is(err, database.ErrDuplicateName):
		respondError(w, r, http.StatusConflict, "Resource conflict", err.Error())
	case errors.Is(err, category.ErrBlankName):
		respondError(w, r, http.StatusBadRequest, "Validation failed", err.Error())
	default:
		respondError(w, r, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred")
	}
}
