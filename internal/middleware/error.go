package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mecoding/todo-api/internal/models"
)

// errorResponse mirrors the API's error payload shape.
type errorResponse struct {
	Status    int                  `json:"status"`
	Message   string               `json:"message"`
	Details   string               `json:"details"`
	Timestamp models.LocalDateTime `json:"timestamp"`
	Path      string               `json:"path"`
}

// Recovery creates panic-recovery middleware. Panic details are logged
// server-side and never exposed to the client.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic_recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)
					respondErrorJSON(w, r, http.StatusInternalServerError, "Internal server error", "An unexpected error occurred", logger)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// respondErrorJSON sends an error JSON response.
func respondErrorJSON(w http.ResponseWriter, r *http.Request, status int, message, details string, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := errorResponse{
		Status:    status,
		Message:   message,
		Details:   details,
		Timestamp: models.Now(),
		Path:      r.URL.Path,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed_to_encode_error_response",
			zap.Error(err),
			zap.Int("status_code", status),
			zap.String("path", r.URL.Path),
		)
	}
}
