package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	serviceName    = "guttracker-backend"
	serviceVersion = "1.0.0"
	healthTimeout  = 2 * time.Second
)

// HealthCheck probes one dependency
type HealthCheck func(ctx context.Context) error

// HealthHandler implements the health check endpoint
type HealthHandler struct {
	checks map[string]HealthCheck
	logger *zap.Logger
}

// NewHealthHandler creates a HealthHandler with the given named checks
func NewHealthHandler(checks map[string]HealthCheck, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// GetHealth reports healthy only when every dependency check passes
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	dependencies := gin.H{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Error("health check failed",
				zap.String("dependency", name),
				zap.Error(err),
			)
			dependencies[name] = "disconnected"
			status = http.StatusServiceUnavailable
			continue
		}
		dependencies[name] = "connected"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":       overall,
		"dependencies": dependencies,
		"service":      serviceName,
		"version":      serviceVersion,
	})
}
