package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobsphere-ai/internal/ai"
	"jobsphere-ai/internal/api/routes"
	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/logging"
	"jobsphere-ai/internal/quota"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobSphere AI service")

	// Select quota store
	var store quota.Store
	var redisStore *quota.RedisStore
	switch cfg.Quota.Store {
	case "redis":
		redisStore, err = quota.NewRedisStore(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis quota store", map[string]interface{}{
				"error": err.Error(),
			})
		}
		store = redisStore
		logger.Info("Using Redis quota store", map[string]interface{}{"url": cfg.Redis.URL})
	default:
		store = quota.NewMemoryStore()
		logger.Info("Using in-memory quota store")
	}

	tracker := quota.NewTracker(store, cfg.Quota.DailyLimit)

	// Initialize AI manager
	ctx := context.Background()
	aiManager := ai.NewManager(cfg)
	if err := aiManager.Start(ctx); err != nil {
		logger.Fatal("Failed to start AI manager", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, aiManager, tracker)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping AI manager...")
		if err := aiManager.Stop(); err != nil {
			logger.Error("Error stopping AI manager", map[string]interface{}{"error": err.Error()})
		}

		if redisStore != nil {
			logger.Info("Closing Redis connection...")
			if err := redisStore.Close(); err != nil {
				logger.Error("Error closing Redis connection", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
		_ = logging.CloseLogging()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
