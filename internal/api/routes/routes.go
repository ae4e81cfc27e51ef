package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobsphere-ai/internal/ai"
	"jobsphere-ai/internal/api/handlers"
	"jobsphere-ai/internal/api/middleware"
	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/quota"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, aiManager *ai.Manager, tracker *quota.Tracker) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Server.MaxBodyBytes))
	// AI endpoints may walk the whole fallback chain before answering
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(aiManager, tracker))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(aiManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/analyze", handlers.AnalyzeResumeHandler(aiManager, tracker))
			resume.GET("/usage", handlers.UsageHandler(tracker, quota.FeatureResumeAnalysis))
		}

		coverLetter := v1.Group("/cover-letter")
		{
			coverLetter.POST("/generate", handlers.GenerateCoverLetterHandler(aiManager, tracker))
			coverLetter.GET("/usage", handlers.UsageHandler(tracker, quota.FeatureCoverLetter))
		}

		practice := v1.Group("/practice")
		{
			practice.POST("/questions", handlers.GenerateQuestionsHandler(aiManager, tracker))
			practice.GET("/questions/usage", handlers.UsageHandler(tracker, quota.FeaturePracticeTest))
			practice.POST("/evaluate", handlers.EvaluateAnswersHandler(aiManager, tracker))
			practice.GET("/evaluate/usage", handlers.UsageHandler(tracker, quota.FeatureAnswerEvaluation))
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "JobSphere AI",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
