// Package slogx wraps log/slog with the service's logging conventions:
// one configured root logger carrying service/version/env attributes, a
// request-scoped logger travelling in the context, and an HTTP middleware
// that stamps each request with a ULID id.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler and the attributes every record carries.
// Level and Format are free-form strings straight from the environment;
// anything unrecognized falls back to info/JSON.
type Config struct {
	Service string
	Version string
	Env     string // e.g. "dev", "prod"
	Level   string // e.g. "debug", "info", "warn", "error"
	Format  string // e.g. "json", "text"
}

// New builds the root logger and installs it as slog's default, so code
// that never sees a context still logs through the same handler.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev", // Source locations only outside production
		Level:     level,
	}

	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
