package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "pathlight"

// SpanManager handles trace span lifecycle for route queries.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRouteSpan starts a span covering one shortest-path query.
	StartRouteSpan(ctx context.Context, from, to string) (context.Context, trace.Span)

	// EndRouteSpan annotates the span with the result and ends it.
	// An empty path marks the span as a miss.
	EndRouteSpan(span trace.Span, path []string, distance float64)

	// EndSpanWithError records err on the span and ends it.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// Each span is started on the global tracer provider in effect at that
// moment, so providers installed later by Setup are picked up.
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRouteSpan starts a span for a route query.
func (m *otelSpanManager) StartRouteSpan(ctx context.Context, from, to string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "pathlight.route",
		trace.WithAttributes(
			attribute.String("route.from", from),
			attribute.String("route.to", to),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndRouteSpan records the outcome and ends the span.
func (m *otelSpanManager) EndRouteSpan(span trace.Span, path []string, distance float64) {
	if span == nil {
		return
	}
	found := len(path) > 0
	span.SetAttributes(attribute.Bool("route.found", found))
	if found {
		span.SetAttributes(
			attribute.Int("route.hops", len(path)-1),
			attribute.Float64("route.distance", distance),
		)
	}
	span.SetStatus(codes.Ok, "")
	span.End()
}

// EndSpanWithError completes a span with an error status.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
