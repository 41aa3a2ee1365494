package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"breezy.app/internal/app"
	"breezy.app/internal/config"
	"breezy.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		slog.Error("Failed to create logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(log.Logger)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApplication(ctx, cfg, log.Logger, app.DependencyOptions{})
	if err != nil {
		log.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	log.Info("Server configuration",
		"port", cfg.Server.Port,
		"units", cfg.Weather.Units,
		"cache_enabled", cfg.Weather.EnableCache,
		"database", string(cfg.Database.Driver))

	done := setupGracefulShutdown(cancel, application, log)

	log.Info("Starting Breezy weather API...")
	if err := application.Start(ctx); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	<-done
}

func setupGracefulShutdown(cancel context.CancelFunc, application *app.Application, log *logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)
		<-c
		log.Info("Received shutdown signal...")

		// Cancel the context to stop background refreshes
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), application.Config().Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := application.Shutdown(shutdownCtx); err != nil {
			log.Error("Error during graceful shutdown", "error", err)
		}
	}()

	return done
}
