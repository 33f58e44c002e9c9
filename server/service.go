// Package server exposes shortest-path queries over HTTP for the
// interactive map front end.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathlight/core"
	"github.com/katalvlaran/pathlight/dijkstra"
	"github.com/katalvlaran/pathlight/highlight"
	"github.com/katalvlaran/pathlight/observability"
)

// Sentinel errors returned by Service.
var (
	// ErrEmptyReference indicates a route endpoint was not given.
	ErrEmptyReference = errors.New("server: node reference is empty")

	// ErrNodeNotFound indicates a route endpoint matches no node id or name.
	ErrNodeNotFound = errors.New("server: node not found")
)

// RouteResult is the outcome of a resolved route query.
type RouteResult struct {
	From        core.Node
	To          core.Node
	Path        []string
	Names       []string
	Distance    float64
	Found       bool
	Highlighted []int
}

// Service answers route queries against one static graph.
//
// The adjacency index is built once at construction; every query still
// owns its own distance map, predecessor map and queue, so concurrent
// calls are safe. The graph must not be mutated after NewService.
type Service struct {
	graph   *core.Graph
	adj     core.Adjacency
	names   map[string]string // node id → display name
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithMetrics sets the metrics recorder. Default: observability.NoopMetrics.
func WithMetrics(m observability.MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithSpans sets the span manager. Default: observability.NoopSpanManager.
func WithSpans(sm observability.SpanManager) ServiceOption {
	return func(s *Service) {
		if sm != nil {
			s.spans = sm
		}
	}
}

// NewService validates g and prepares it for repeated queries.
func NewService(g *core.Graph, logger *slog.Logger, opts ...ServiceOption) (*Service, error) {
	if g == nil {
		return nil, errors.New("server: graph is nil")
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("server: invalid graph: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Service{
		graph:   g,
		adj:     core.NewAdjacency(g.Edges),
		names:   make(map[string]string, len(g.Nodes)),
		logger:  logger,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, n := range g.Nodes {
		s.names[n.ID] = n.Name
	}
	for _, opt := range opts {
		opt(s)
	}

	logger.Info("graph loaded",
		slog.Int("nodes", len(g.Nodes)),
		slog.Int("paths", len(g.Edges)))

	return s, nil
}

// Nodes returns the graph's nodes. The slice is shared; do not modify it.
func (s *Service) Nodes() []core.Node { return s.graph.Nodes }

// Paths returns the graph's edges. The slice is shared; do not modify it.
func (s *Service) Paths() []core.Edge { return s.graph.Edges }

// Name returns the display name of a node id, or "Unknown".
func (s *Service) Name(id string) string {
	if n, ok := s.names[id]; ok {
		return n
	}
	return "Unknown"
}

// resolve maps a node id or name to a node.
func (s *Service) resolve(ref string) (core.Node, error) {
	if ref == "" {
		return core.Node{}, ErrEmptyReference
	}
	n, ok := s.graph.Lookup(ref)
	if !ok {
		return core.Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, ref)
	}
	return n, nil
}

// Route finds the shortest path between two node references (id or name).
// An unreachable destination is not an error: Found is false and Path empty.
func (s *Service) Route(ctx context.Context, from, to string) (RouteResult, error) {
	ctx, span := s.spans.StartRouteSpan(ctx, from, to)

	src, err := s.resolve(from)
	if err != nil {
		s.spans.EndSpanWithError(span, err)
		return RouteResult{}, err
	}
	dst, err := s.resolve(to)
	if err != nil {
		s.spans.EndSpanWithError(span, err)
		return RouteResult{}, err
	}

	start := time.Now()
	res := dijkstra.Route(s.graph.Nodes, s.graph.Edges, src.ID, dst.ID, dijkstra.WithAdjacency(s.adj))
	elapsed := time.Since(start)

	out := RouteResult{
		From:        src,
		To:          dst,
		Path:        res.Path,
		Names:       make([]string, len(res.Path)),
		Distance:    res.Distance,
		Found:       res.Found(),
		Highlighted: highlight.Edges(s.graph.Edges, res.Path),
	}
	for i, id := range res.Path {
		out.Names[i] = s.Name(id)
	}

	s.metrics.RecordRoute(ctx, out.Found, res.Hops(), res.Distance, elapsed)
	s.spans.EndRouteSpan(span, res.Path, res.Distance)
	if out.Found {
		observability.LogRoute(s.logger, src.ID, dst.ID, res.Hops(), res.Distance, elapsed)
	} else {
		observability.LogRouteMiss(s.logger, src.ID, dst.ID, elapsed)
	}

	return out, nil
}
