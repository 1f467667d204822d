package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/whatap/mock-azure-exporter/internal/config"
	"github.com/whatap/mock-azure-exporter/internal/exporter"
	"github.com/whatap/mock-azure-exporter/internal/handlers"
	"github.com/whatap/mock-azure-exporter/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg.LogLevel)

	clock := clockwork.NewRealClock()
	gen := exporter.NewWithClock(clock)

	srv := server.New(cfg)

	rootHandlers := handlers.NewRootHandlers()
	rootHandlers.Register(srv.Mux())

	metricsHandlers := handlers.NewMetricsHandlers(gen)
	metricsHandlers.Register(srv.Mux())

	probeHandlers := handlers.NewProbeHandlers(gen)
	probeHandlers.Register(srv.Mux())

	debugHandlers := handlers.NewDebugHandlers(clock)
	debugHandlers.Register(srv.Mux())

	slog.Info("mock azure exporter starting",
		"addr", cfg.Addr(),
		"log_level", cfg.LogLevel,
		"start_time", gen.StartTime(),
	)

	if err := srv.Run(context.Background()); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func initLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}
