// cmd/activity-server/main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"activity-signups/internal/common/config"
	"activity-signups/internal/common/logger"
	"activity-signups/internal/common/observability"
	"activity-signups/internal/registry"
	"activity-signups/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap := logger.New("info", "console")
		bootstrap.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)
	zapLog.Info("starting activity server",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	// --- Seed the registry ---
	roster := registry.DefaultRoster()
	if cfg.Roster.Path != "" {
		roster, err = registry.LoadRosterFile(cfg.Roster.Path)
		if err != nil {
			zapLog.Fatal("roster load failed", zap.String("path", cfg.Roster.Path), zap.Error(err))
		}
		zapLog.Info("roster loaded", zap.String("path", cfg.Roster.Path), zap.Int("activities", len(roster)))
	}
	reg := registry.New(roster)

	srv := server.New(cfg, reg, log, obs)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		zapLog.Fatal("http server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("error during shutdown", zap.Error(err))
	}

	zapLog.Info("activity server stopped gracefully")
}
