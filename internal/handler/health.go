package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/letuankiet/usersdesk/internal/middleware"
	"github.com/letuankiet/usersdesk/internal/server"
)

// Pinger is the database dependency probed by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the service and its database are usable.
type HealthHandler struct {
	Handler
	db Pinger
}

// NewHealthHandler probes db; a nil db is reported as unhealthy.
func NewHealthHandler(s *server.Server, db Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth returns 200 when every configured check passes and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]CheckResult{},
	}

	if cfg.Enabled && slices.Contains(cfg.Checks, "database") {
		result := h.checkDatabase(c.Request().Context(), cfg.Timeout)
		response.Checks["database"] = result

		if result.Status != "healthy" {
			response.Status = "unhealthy"

			logger.Error().
				Str("error", result.Error).
				Str("response_time", result.ResponseTime).
				Msg("database health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]any{
					"check_type":    "database",
					"operation":     "health_check",
					"error_type":    "database_unhealthy",
					"error_message": result.Error,
				})
			}
		}
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context, timeout time.Duration) CheckResult {
	start := time.Now()

	if h.db == nil {
		return CheckResult{Status: "unhealthy", ResponseTime: "0s", Error: "database not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return CheckResult{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).String(),
			Error:        err.Error(),
		}
	}

	return CheckResult{Status: "healthy", ResponseTime: time.Since(start).String()}
}
