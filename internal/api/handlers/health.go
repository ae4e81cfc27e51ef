package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobsphere-ai/internal/ai"
	"jobsphere-ai/internal/logging"
	"jobsphere-ai/internal/quota"
	"jobsphere-ai/pkg/models"
)

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	reqID := requestID(c)
	logger := logging.GetGlobalLogger()

	logger.Debug("Health check requested", map[string]interface{}{"request_id": reqID})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler handles readiness probe requests
func ReadinessHandler(aiManager *ai.Manager, tracker *quota.Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":         "ok",
			"ai":          "ok",
			"quota_store": "ok",
		}
		status := "ready"
		code := http.StatusOK

		if !aiManager.IsHealthy() {
			checks["ai"] = "not started"
			status = "not ready"
			code = http.StatusServiceUnavailable
		}
		if err := tracker.Ping(c.Request().Context()); err != nil {
			checks["quota_store"] = err.Error()
			status = "not ready"
			code = http.StatusServiceUnavailable
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status including the provider roster
func StatusHandler(aiManager *ai.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "operational",
			"timestamp": time.Now(),
			"version":   "1.0.0",
			"uptime":    time.Since(startTime).String(),
			"providers": aiManager.Status(),
		})
	}
}
