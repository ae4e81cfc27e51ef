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

// AnalyzeResumeHandler handles resume-to-job match analysis requests
func AnalyzeResumeHandler(aiManager *ai.Manager, tracker *quota.Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		uid := userID(c)
		if uid == "" {
			return missingUserError(c, reqID)
		}

		var req models.AnalyzeResumeRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind analyze request", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", reqID)
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Analyze request validation failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), reqID)
		}

		if err := tracker.CheckAndConsume(c.Request().Context(), uid, quota.FeatureResumeAnalysis); err != nil {
			return respondError(c, reqID, err)
		}

		analysis, provider, err := aiManager.AnalyzeResume(c.Request().Context(), req.ResumeText, req.JobDescription)
		if err != nil {
			logger.Error("Resume analysis failed", map[string]interface{}{"error": err.Error()})
			return respondError(c, reqID, err)
		}

		logger.Info("Resume analysis completed", map[string]interface{}{
			"provider":        provider,
			"overall_match":   analysis.OverallMatch,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.AnalyzeResumeResponse{
			Success:  true,
			Analysis: analysis,
			Provider: provider,
		})
	}
}
