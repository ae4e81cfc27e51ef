package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobsphere-ai/pkg/models"
	"jobsphere-ai/pkg/utils"
)

var validate = validator.New()

// requestID returns the id injected by the validation middleware, minting a
// fresh one for call paths that bypass it (tests, probes).
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}

// userID extracts the caller identity from the X-User-ID header
func userID(c echo.Context) string {
	return c.Request().Header.Get("X-User-ID")
}

func errorJSON(c echo.Context, status int, code, message, reqID string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: reqID,
		Timestamp: time.Now(),
	})
}

func missingUserError(c echo.Context, reqID string) error {
	return errorJSON(c, http.StatusBadRequest, "missing_user", "X-User-ID header is required", reqID)
}

// respondError maps application errors onto HTTP responses. Quota rejections
// and throttling signals become 429, transient store failures 503, anything
// else from the AI layer 503 with the aggregate unavailability message.
func respondError(c echo.Context, reqID string, err error) error {
	if ce, ok := err.(*utils.CustomError); ok {
		code := "request_failed"
		switch ce.Code {
		case http.StatusTooManyRequests:
			code = "quota_exceeded"
		case http.StatusServiceUnavailable:
			code = "service_unavailable"
		case http.StatusBadRequest:
			code = "validation_failed"
		}
		return errorJSON(c, ce.Code, code, ce.Error(), reqID)
	}

	if utils.IsRateLimitSignal(err.Error()) {
		return errorJSON(c, http.StatusTooManyRequests, "quota_exceeded", err.Error(), reqID)
	}
	return errorJSON(c, http.StatusServiceUnavailable, "ai_unavailable", err.Error(), reqID)
}
