package handlers

import (
	"context"
	"net/http"
	"time"

	"fleet-dashboard/internal/errors"
	"fleet-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthCheckTimeout = 3 * time.Second

// Pinger is anything that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler handles health check endpoints
type HealthCheckHandler struct {
	db      *gorm.DB
	backend Pinger
	cache   Pinger
	breaker services.CircuitBreakerInterface
	now     func() time.Time
}

// NewHealthCheckHandler creates a new health check handler. cache and breaker may be nil.
func NewHealthCheckHandler(db *gorm.DB, backend Pinger, cache Pinger, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:      db,
		backend: backend,
		cache:   cache,
		breaker: breaker,
		now:     time.Now,
	}
}

// HealthCheck reports the audit store, back-office service and cache.
//
// Method: GET /health
//
// The audit store is the only local dependency, so only its failure is
// reported as 503. An unreachable back-office service or cache degrades the
// dashboard but does not take it out of rotation.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.pingDatabase(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	status := "healthy"
	components := map[string]string{"database": "up"}

	if h.backend != nil {
		components["backend"] = "up"
		if err := h.backend.Ping(ctx); err != nil {
			components["backend"] = "down"
			status = "degraded"
		}
	}
	if h.cache != nil {
		components["cache"] = "up"
		if err := h.cache.Ping(ctx); err != nil {
			components["cache"] = "down"
			status = "degraded"
		}
	}
	if h.breaker != nil {
		components["backend_circuit"] = h.breaker.GetState().String()
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":     status,
		"components": components,
		"time":       h.now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return gorm.ErrInvalidDB
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
