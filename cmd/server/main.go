package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"dashboard-hub/internal/api"
	"dashboard-hub/internal/config"
	"dashboard-hub/internal/scheduler"
	"dashboard-hub/internal/services"
	"dashboard-hub/pkg/client"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Dashboard Hub")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	clientConfig := client.ClientConfig{
		Timeout:        cfg.Client.Timeout,
		MaxRetries:     cfg.Client.MaxRetries,
		RetryDelay:     cfg.Client.RetryDelay,
		Multiplier:     cfg.Client.Multiplier,
		BreakerTimeout: cfg.Client.BreakerTimeout,
	}

	// Data source clients
	meteoClient := client.NewOpenMeteoClient(cfg.OpenMeteo.ForecastURL, cfg.OpenMeteo.GeocodeURL, clientConfig, logger)
	newsClient := client.NewNewsClient(cfg.News.SearchURL, clientConfig, logger)
	sheetClient := client.NewSheetClient(cfg.Sheets.BaseURL, cfg.Sheets.EventsGID, cfg.Sheets.ItemsGID, clientConfig, logger)

	fetcher := services.NewCachedFetcher(
		services.NewRemoteFetcher(meteoClient, newsClient, sheetClient),
		cfg.Cache.TTL,
		logger,
	)

	// Cache warm-up scheduler
	warmer := scheduler.NewWarmer(fetcher, cfg, logger)
	if err := warmer.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(fetcher, cfg, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	warmer.Stop()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
