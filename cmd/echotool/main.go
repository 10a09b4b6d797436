package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/daimoniac/echotool/internal/api"
	"github.com/daimoniac/echotool/internal/config"
	"github.com/daimoniac/echotool/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// All timestamps render in UTC regardless of the host timezone.
	time.Local = time.UTC

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel)
	logger.Info("starting echotool",
		"app_name", cfg.App.Name,
		"app_version", cfg.App.Version,
		"log_level", cfg.Observability.LogLevel)

	tracerProvider, err := observability.SetupTracing(ctx,
		cfg.App.Name, cfg.App.Version, cfg.Observability.OTLPEndpoint, logger)
	if err != nil {
		// Tracing is best-effort. A broken exporter must not keep the
		// service from serving traffic.
		logger.Error("tracing initialization failed, continuing without tracing",
			"error", err.Error())
	}
	tracingEnabled := tracerProvider != nil

	metrics := observability.GetMetrics()
	logger.Debug("metrics initialized")

	apiServer := api.NewAPIServer(cfg, metrics, tracingEnabled, logger)
	logger.Debug("API server initialized",
		"port", cfg.HTTP.Port,
		"tracing_enabled", tracingEnabled)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("API server listening",
			"port", cfg.HTTP.Port)
		if err := apiServer.Start(ctx); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
		close(errChan)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err, ok := <-errChan:
		if ok && err != nil {
			logger.Error("component error, initiating shutdown",
				"error", err.Error())
			runErr = err
			cancel()
		}
	}

	logger.Info("shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutting down API server",
			"error", err.Error())
	}

	if err := observability.ShutdownTracing(shutdownCtx, tracerProvider, logger); err != nil {
		logger.Error("error shutting down tracing",
			"error", err.Error())
	}

	logger.Info("shutdown complete")
	return runErr
}
