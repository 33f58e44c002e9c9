// Package config loads pathlight settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP      HTTPConfig
	Graph     GraphConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// HTTPConfig governs HTTP server behaviour.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// GraphConfig points at the graph definition to serve.
// An empty File selects the embedded demo map.
type GraphConfig struct {
	File string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// TelemetryConfig toggles OpenTelemetry export.
type TelemetryConfig struct {
	MetricsEnabled bool
	TracingEnabled bool
}

// Enabled reports whether any telemetry signal is on.
func (t TelemetryConfig) Enabled() bool { return t.MetricsEnabled || t.TracingEnabled }

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLoggingLevel    = "info"
	defaultLoggingFormat   = "text"
)

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Logging: LoggingConfig{
			Level:  defaultLoggingLevel,
			Format: defaultLoggingFormat,
		},
	}
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Default()
	cfg.HTTP.Host = valueOrDefault("SERVER_HOST", defaultHost)
	cfg.Graph.File = os.Getenv("PATHLIGHT_GRAPH_FILE")
	cfg.Logging = LoggingConfig{
		Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
		Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
	}
	cfg.Telemetry = TelemetryConfig{
		MetricsEnabled: parseBoolWithDefault("TELEMETRY_METRICS_ENABLED", false),
		TracingEnabled: parseBoolWithDefault("TELEMETRY_TRACING_ENABLED", false),
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SERVER_READ_TIMEOUT", &cfg.HTTP.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout},
		{"SERVER_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", &cfg.HTTP.ShutdownTimeout},
	}
	for _, d := range durations {
		if err := parseDuration(d.key, d.dst); err != nil {
			return Config{}, err
		}
	}

	return cfg, nil
}

// Addr returns host:port for net.Listen.
func (h HTTPConfig) Addr() string { return fmt.Sprintf("%s:%d", h.Host, h.Port) }

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseDuration(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = d
	return nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if err := ValidatePort(port); err != nil {
			return 0, err
		}
		return port, nil
	}
	return fallback, nil
}

// ValidatePort rejects ports outside 1..65535.
func ValidatePort(port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("port %d is out of range", port)
	}
	return nil
}
