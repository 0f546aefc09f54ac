package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/sports-schedule/internal/app"
	"github.com/riskibarqy/sports-schedule/internal/config"
	"github.com/riskibarqy/sports-schedule/internal/observability"
	"github.com/riskibarqy/sports-schedule/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logging.Default().Error("api exited", "error", err)
		_ = logging.Default().Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	base := logging.NewJSON(cfg.LogLevel)
	if cfg.AppEnv == config.EnvDev {
		base = logging.NewConsole(cfg.LogLevel)
	}

	logger, shutdownUptrace, err := observability.InitUptrace(cfg, base)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	logger, shutdownBetterStack, err := observability.InitBetterStackLogger(cfg, logger)
	if err != nil {
		return fmt.Errorf("init betterstack: %w", err)
	}
	logging.SetDefault(logger)

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownBetterStack(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown betterstack: %v\n", err)
		}
		if err := shutdownUptrace(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown uptrace: %v\n", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		return fmt.Errorf("init pyroscope: %w", err)
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope failed", "error", err)
		}
	}()

	pprofServer, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("start pprof: %w", err)
	}
	defer func() {
		if err := observability.StopPprofServer(pprofServer, logger, shutdownTimeout); err != nil {
			logger.Warn("stop pprof failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("close store failed", "error", err)
		}
	}()

	srv := application.Server
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			"addr", cfg.HTTPAddr,
			"env", cfg.AppEnv,
			"store", cfg.StoreBackend,
			"swagger", cfg.SwaggerEnabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
