package main

import (
	"log/slog"
	"os"

	"fxledger/internal/config"
)

// newLogger logs JSON in production and text otherwise, and installs itself as the default
func newLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch {
	case cfg.IsDevelopment():
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	case cfg.IsTesting():
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	default:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler).With(slog.String("environment", cfg.Server.Environment))
	slog.SetDefault(logger)
	return logger
}
