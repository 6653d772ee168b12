package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/mooddecode/config"
	"github.com/spacesedan/mooddecode/internal/analysis"
	"github.com/spacesedan/mooddecode/internal/logging"
	"github.com/spacesedan/mooddecode/internal/monitoring"
	"github.com/spacesedan/mooddecode/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load(env)
	if err != nil {
		logging.InitLogger(os.Getenv("LOG_LEVEL"), "")
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(cfg.LogLevel, cfg.ErrorLogFile)

	gateway, err := analysis.Build(cfg)
	if err != nil {
		slog.Error("[Main] Failed to build inference providers", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			slog.Warn("[Main] Failed to release providers", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	capabilities := make([]string, 0, len(gateway.Pingers))
	for c := range gateway.Pingers {
		capabilities = append(capabilities, c)
	}
	health := monitoring.NewUpstreamHealth(capabilities...)
	for _, c := range health.Capabilities() {
		go monitoring.MonitorUpstreamHealth(ctx, c, gateway.Pingers[c], health.Flag(c), cfg.HealthcheckInterval)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           server.New(cfg, gateway.Service, health).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("[Main] Starting server",
			slog.String("addr", cfg.ServerAddr),
			slog.String("env", env),
			slog.String("mood_provider", cfg.MoodProvider),
			slog.String("crisis_provider", cfg.CrisisProvider),
			slog.String("summary_provider", cfg.SummaryProvider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Main] Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Server forced to shutdown", slog.String("error", err.Error()))
	}
	slog.Info("[Main] Server exited")
}
