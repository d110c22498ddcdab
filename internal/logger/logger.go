package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"tipstr/internal/config"
)

const serviceName = "tipstr"

// Level converts a level string to slog.Level. Unknown values map to info.
func Level(s string) slog.Level {
	switch strings.ToLower(s) {
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

// New builds a logger writing to w. The format is json or text.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     Level(cfg.LogLevel),
		AddSource: cfg.Environment == "dev" || cfg.Environment == "development",
	}
	var h slog.Handler
	if strings.ToLower(cfg.LogFormat) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With(
		slog.String("service", serviceName),
		slog.String("version", cfg.Version),
		slog.String("environment", cfg.Environment),
	)
}

// Open returns a logger for cfg and a close func. With no LogFile the logs
// are discarded, since stdout and stderr are owned by the terminal UI.
func Open(cfg config.Config) (*slog.Logger, func() error, error) {
	if cfg.LogFile == "" {
		return New(io.Discard, cfg), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, cfg), f.Close, nil
}
