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

	"jobscout/internal/api/routes"
	"jobscout/internal/cache"
	"jobscout/internal/config"
	"jobscout/internal/exporter"
	"jobscout/internal/llm"
	"jobscout/internal/logging"
	"jobscout/internal/workers"
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
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobScout")

	// Initialize advisor manager
	advisorManager := llm.NewManager(cfg)
	if err := advisorManager.Start(); err != nil {
		logger.Fatal("Failed to start advisor manager", map[string]interface{}{"error": err.Error()})
	}

	// Initialize result cache
	var resultCache *cache.ResultCache
	if cfg.Redis.Enabled {
		resultCache = cache.NewResultCache(cfg)
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := resultCache.Ping(pingCtx); err != nil {
			logger.Warn("Redis unreachable, result caching disabled", map[string]interface{}{"error": err.Error()})
			resultCache = nil
		}
		cancel()
	}

	// Initialize artifact exporter
	runExporter, err := exporter.NewExporter(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize artifact exporter", map[string]interface{}{"error": err.Error()})
	}

	// Initialize worker pool
	poolManager := workers.NewPoolManager(cfg, advisorManager)
	if err := poolManager.Initialize(); err != nil {
		logger.Fatal("Failed to start worker pool", map[string]interface{}{"error": err.Error()})
	}
	defer poolManager.Shutdown()

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Setup routes
	routes.SetupRoutes(e, cfg, poolManager, advisorManager, resultCache, runExporter)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping worker pool...")
		if err := poolManager.Shutdown(); err != nil {
			logger.Error("Error stopping worker pool", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping advisor manager...")
		if err := advisorManager.Stop(); err != nil {
			logger.Error("Error stopping advisor manager", map[string]interface{}{"error": err.Error()})
		}

		if resultCache != nil {
			logger.Info("Closing result cache...")
			if err := resultCache.Close(); err != nil {
				logger.Error("Error closing result cache", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{"reason": err.Error()})
	}
}
