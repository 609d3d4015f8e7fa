package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/mecoding/todo-api/internal/database"
	"github.com/mecoding/todo-api/internal/models"
)

// HealthChecker handles health check requests.
type HealthChecker struct {
	db *database.DB
}

// NewHealthChecker creates a new health checker.
func NewHealthChecker(db *database.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string               `json:"status"`
	Timestamp models.LocalDateTime `json:"timestamp"`
	Checks    map[string]string    `json:"checks,omitempty"`
}

// HealthCheck handles the /healthz endpoint. With mode=extended it also
// pings the database.
func (h *HealthChecker) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: models.Now(),
	}

	if r.URL.Query().Get("mode") == "extended" {
		checks := make(map[string]string)

		if err := h.checkDatabase(r.Context()); err != nil {
			response.Status = "unhealthy"
			checks["database"] = "unhealthy: " + err.Error()
		} else {
			checks["database"] = "healthy"
		}

		response.Checks = checks

		statusCode := http.StatusOK
		if response.Status == "unhealthy" {
			statusCode = http.StatusServiceUnavailable
		}
		respondJSON(w, statusCode, response)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

func (h *HealthChecker) checkDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return h.db.PingContext(ctx)
}
