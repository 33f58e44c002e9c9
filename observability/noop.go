package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordRoute does nothing.
func (NoopMetrics) RecordRoute(_ context.Context, _ bool, _ int, _ float64, _ time.Duration) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

// StartRouteSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartRouteSpan(ctx context.Context, _, _ string) (context.Context, trace.Span) {
	return ctx, noop.Span{}
}

// EndRouteSpan does nothing.
func (NoopSpanManager) EndRouteSpan(_ trace.Span, _ []string, _ float64) {}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}
