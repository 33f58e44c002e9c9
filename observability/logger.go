// Package observability provides structured logging, metrics and tracing
// for route queries.
//
// Features:
//   - Structured logging via slog
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Metrics and tracing are opt-in and have no-op implementations when disabled.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/pathlight/config"
)

// NewLogger builds a slog.Logger writing to stdout according to cfg.
func NewLogger(cfg config.LoggingConfig) *slog.Logger {
	return NewLoggerTo(os.Stdout, cfg)
}

// NewLoggerTo builds a slog.Logger writing to w according to cfg.
func NewLoggerTo(w io.Writer, cfg config.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// LogRoute logs a successful route query.
func LogRoute(logger *slog.Logger, from, to string, hops int, distance float64, d time.Duration) {
	if logger == nil {
		return
	}
	logger.Info("route computed",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("hops", hops),
		slog.Float64("distance", distance),
		slog.Float64("duration_ms", float64(d.Microseconds())/1000),
	)
}

// LogRouteMiss logs a query whose destination is unreachable.
func LogRouteMiss(logger *slog.Logger, from, to string, d time.Duration) {
	if logger == nil {
		return
	}
	logger.Info("no route",
		slog.String("from", from),
		slog.String("to", to),
		slog.Float64("duration_ms", float64(d.Microseconds())/1000),
	)
}
