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

// GenerateCoverLetterHandler handles cover letter generation requests
func GenerateCoverLetterHandler(aiManager *ai.Manager, tracker *quota.Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		uid := userID(c)
		if uid == "" {
			return missingUserError(c, reqID)
		}

		var req models.CoverLetterRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind cover letter request", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", reqID)
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Cover letter request validation failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), reqID)
		}

		if err := tracker.CheckAndConsume(c.Request().Context(), uid, quota.FeatureCoverLetter); err != nil {
			return respondError(c, reqID, err)
		}

		letter, provider, err := aiManager.GenerateCoverLetter(c.Request().Context(), req.ResumeText, req.JobDescription, req.CompanyName, req.Candidate)
		if err != nil {
			logger.Error("Cover letter generation failed", map[string]interface{}{"error": err.Error()})
			return respondError(c, reqID, err)
		}

		logger.Info("Cover letter generated", map[string]interface{}{
			"provider":        provider,
			"word_count":      letter.WordCount,
			"truncated":       letter.Truncated,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.CoverLetterResponse{
			Success:     true,
			CoverLetter: letter.Body,
			WordCount:   letter.WordCount,
			CharCount:   letter.CharCount,
			Provider:    provider,
		})
	}
}

// UsageHandler reports daily quota consumption for a feature without consuming it
func UsageHandler(tracker *quota.Tracker, feature string) echo.HandlerFunc {
	return func(c echo.Context) error {
		reqID := requestID(c)

		uid := userID(c)
		if uid == "" {
			return missingUserError(c, reqID)
		}

		used, limit, remaining, err := tracker.Usage(c.Request().Context(), uid, feature)
		if err != nil {
			return respondError(c, reqID, err)
		}

		return c.JSON(http.StatusOK, models.UsageResponse{
			Success:   true,
			Feature:   feature,
			Used:      used,
			Limit:     limit,
			Remaining: remaining,
		})
	}
}
