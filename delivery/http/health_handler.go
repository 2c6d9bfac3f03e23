// Package http contains HTTP delivery implementations for the application
package http

import (
	"net/http"

	"github.com/eggmansigma/zuckmyeggs/pkg/api"
	"github.com/eggmansigma/zuckmyeggs/pkg/database"
	"github.com/eggmansigma/zuckmyeggs/pkg/logger"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	// DB is pinged to verify the storage backend is reachable
	DB database.Client
	// Logger is used for logging operations within the handler
	Logger logger.LoggerInterface
	// API provides standardized API response patterns
	API api.Api
}

// NewHealthHandler creates a new instance of HealthHandler
func NewHealthHandler(db database.Client, appLogger logger.LoggerInterface) *HealthHandler {
	return &HealthHandler{
		DB:     db,
		Logger: appLogger,
		API:    api.New(),
	}
}

// HealthCheckHandler handles HTTP requests for health checks
// It pings the database and reports the service status as JSON
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Logger.InfoContext(ctx, "Health check endpoint called")

	if err := h.DB.Ping(); err != nil {
		h.Logger.ErrorContext(ctx, "Health check failed: database unreachable", "error", err)
		h.API.Error(ctx, w, http.StatusServiceUnavailable, &api.Error{
			Code:    "SERVICE_UNAVAILABLE",
			Message: "Database is unreachable",
		})
		return
	}

	healthData := map[string]interface{}{
		"status":  "healthy",
		"message": "Service is running",
	}

	h.API.Success(ctx, w, healthData)
}
