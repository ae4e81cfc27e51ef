package middleware

import (
	"net/http"
	"time"

	"jobsphere-ai/pkg/models"
	"jobsphere-ai/pkg/utils"

	"github.com/labstack/echo/v4"
)

// RequestValidation tags every request with an ID and rejects oversized
// POST bodies before they reach a handler. The cap comes from
// server.max_body_bytes; a zero or negative value disables it.
func RequestValidation(maxBodyBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if maxBodyBytes > 0 && c.Request().Method == http.MethodPost &&
				c.Request().ContentLength > maxBodyBytes {
				return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
					Error:     "request_too_large",
					Message:   "Request body too large",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}
