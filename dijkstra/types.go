package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathlight/core"
)

// Sentinel errors reported (via panic) by invalid option arguments.
var (
	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value
	// or NaN, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero,
	// a negative value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Result is the outcome of a Route query.
//
// Path is [start, …, end] or empty when end is unreachable.
// Distance is the total weight along Path, or +Inf when Path is empty.
type Result struct {
	Path     []string
	Distance float64
}

// Found reports whether a path was found.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Hops returns the number of edges along the path.
func (r Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// Options configures a query.
//
// Adjacency        – prebuilt incidence index; nil means build one per call.
// MaxDistance      – nodes farther than this are never settled. Default +Inf.
// InfEdgeThreshold – edges with Distance ≥ this are skipped. Default +Inf.
type Options struct {
	Adjacency        core.Adjacency
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithAdjacency supplies an incidence index built by core.NewAdjacency over
// the same edge slice passed to the query. Use it when the graph is static
// and queried repeatedly, to avoid rebuilding the index each time.
func WithAdjacency(adj core.Adjacency) Option {
	return func(o *Options) {
		o.Adjacency = adj
	}
}

// WithMaxDistance caps exploration: nodes whose shortest distance would
// exceed max are treated as unreachable.
// Panics with ErrBadMaxDistance if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks edges with Distance ≥ threshold as impassable
// walls, e.g. closed roads modelled with a huge weight.
// Panics with ErrBadInfThreshold if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no adjacency, no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		Adjacency:        nil,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
