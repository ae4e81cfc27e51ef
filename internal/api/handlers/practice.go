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

// GenerateQuestionsHandler handles practice interview question generation
func GenerateQuestionsHandler(aiManager *ai.Manager, tracker *quota.Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		uid := userID(c)
		if uid == "" {
			return missingUserError(c, reqID)
		}

		var req models.GenerateQuestionsRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind questions request", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", reqID)
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Questions request validation failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), reqID)
		}

		if err := tracker.CheckAndConsume(c.Request().Context(), uid, quota.FeaturePracticeTest); err != nil {
			return respondError(c, reqID, err)
		}

		questions, provider, err := aiManager.GenerateQuestions(c.Request().Context(), req.JobDescription)
		if err != nil {
			logger.Error("Question generation failed", map[string]interface{}{"error": err.Error()})
			return respondError(c, reqID, err)
		}

		logger.Info("Practice questions generated", map[string]interface{}{
			"provider":        provider,
			"question_count":  len(questions),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.GenerateQuestionsResponse{
			Success:   true,
			Questions: questions,
			Provider:  provider,
		})
	}
}

// EvaluateAnswersHandler handles practice answer evaluation
func EvaluateAnswersHandler(aiManager *ai.Manager, tracker *quota.Tracker) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		reqID := requestID(c)
		logger := logging.LogWithRequestID(reqID)

		uid := userID(c)
		if uid == "" {
			return missingUserError(c, reqID)
		}

		var req models.EvaluateAnswersRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind evaluation request", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request format", reqID)
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Evaluation request validation failed", map[string]interface{}{"error": err.Error()})
			return errorJSON(c, http.StatusBadRequest, "validation_failed", err.Error(), reqID)
		}

		if err := tracker.CheckAndConsume(c.Request().Context(), uid, quota.FeatureAnswerEvaluation); err != nil {
			return respondError(c, reqID, err)
		}

		evaluation, provider, err := aiManager.EvaluateAnswers(c.Request().Context(), req.JobDescription, req.QuestionsAndAnswers)
		if err != nil {
			logger.Error("Answer evaluation failed", map[string]interface{}{"error": err.Error()})
			return respondError(c, reqID, err)
		}

		logger.Info("Answers evaluated", map[string]interface{}{
			"provider":        provider,
			"overall_score":   evaluation.OverallScore,
			"answer_count":    len(req.QuestionsAndAnswers),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.EvaluateAnswersResponse{
			Success:    true,
			Evaluation: evaluation,
			Provider:   provider,
		})
	}
}
