package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records route query metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRoute records one query: whether a path was found, its hop
	// count and total distance, and how long the search took.
	RecordRoute(ctx context.Context, found bool, hops int, distance float64, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	queries  metric.Int64Counter
	misses   metric.Int64Counter
	latency  metric.Float64Histogram
	distance metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily creates instruments on the global meter provider.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("pathlight")

	queries, err := meter.Int64Counter("pathlight.route.queries",
		metric.WithDescription("Number of shortest-path queries"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter("pathlight.route.misses",
		metric.WithDescription("Number of queries with no path"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("pathlight.route.latency_ms",
		metric.WithDescription("Shortest-path query latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	distance, err := meter.Float64Histogram("pathlight.route.distance",
		metric.WithDescription("Total distance of returned paths"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		queries:  queries,
		misses:   misses,
		latency:  latency,
		distance: distance,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// Instruments are created once, on the global meter provider in effect at
// the first call. Configure the provider (see Setup) before calling this.
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRoute records a route query.
func (m *otelMetrics) RecordRoute(ctx context.Context, found bool, hops int, distance float64, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.Bool("found", found))

	m.queries.Add(ctx, 1, attrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if !found {
		m.misses.Add(ctx, 1)
		return
	}
	m.distance.Record(ctx, distance, metric.WithAttributes(attribute.Int("hops", hops)))
}
