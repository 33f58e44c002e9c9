package dijkstra

import (
	"math"

	"github.com/katalvlaran/pathlight/core"
	"github.com/katalvlaran/pathlight/pqueue"
)

// ShortestPath returns the node IDs of a minimum-total-distance path from
// startID to endID, both included. It returns an empty, non-nil slice when
// no path exists. When startID == endID the result is [startID].
//
// nodes and edges are read, never modified. Edge endpoints that are absent
// from nodes are treated as opaque IDs at infinite distance.
//
// Complexity: O((V + E) log E).
func ShortestPath(nodes []core.Node, edges []core.Edge, startID, endID string, opts ...Option) []string {
	return Route(nodes, edges, startID, endID, opts...).Path
}

// Route is ShortestPath plus the total distance of the returned path.
// Distance is +Inf when no path exists.
func Route(nodes []core.Node, edges []core.Edge, startID, endID string, opts ...Option) Result {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Adjacency == nil {
		cfg.Adjacency = core.NewAdjacency(edges)
	}

	// 2) Fresh per-query state: nothing here outlives the call.
	r := &runner{
		edges:   edges,
		options: cfg,
		dist:    make(map[string]float64, len(nodes)),
		prev:    make(map[string]string, len(nodes)),
		settled: make(map[string]bool, len(nodes)),
		pq:      pqueue.New(func(a, b entry) bool { return a.dist < b.dist }),
	}

	// 3) Search, then rebuild.
	r.init(nodes, startID)
	r.process(endID)

	path := r.path(startID, endID)
	if len(path) == 0 {
		return Result{Path: path, Distance: math.Inf(1)}
	}

	return Result{Path: path, Distance: r.distance(endID)}
}

// entry is one frontier record: a node and its distance when pushed.
// Later improvements push a fresh entry; the old one becomes stale.
type entry struct {
	id   string
	dist float64
}

// runner holds the mutable state of a single query.
type runner struct {
	edges   []core.Edge
	options Options
	dist    map[string]float64 // best known distance; missing key = +Inf
	prev    map[string]string  // predecessor on best path; missing key = not reached
	settled map[string]bool    // distance is final
	pq      *pqueue.PriorityQueue[entry]
}

// init seeds every known node at +Inf and the start at zero.
func (r *runner) init(nodes []core.Node, startID string) {
	inf := math.Inf(1)
	for _, n := range nodes {
		r.dist[n.ID] = inf
	}
	r.dist[startID] = 0
	r.pq.Enqueue(entry{id: startID, dist: 0})
}

// distance reads the live distance of id; unknown IDs are +Inf.
func (r *runner) distance(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// process drains the frontier until it is empty, endID is settled, or the
// closest remaining entry lies beyond MaxDistance.
func (r *runner) process(endID string) {
	for !r.pq.IsEmpty() {
		item, ok := r.pq.Dequeue()
		if !ok {
			continue
		}

		// Stale entry: a shorter distance was recorded after this push.
		if item.dist > r.distance(item.id) || r.settled[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.settled[item.id] = true
		if item.id == endID {
			break
		}
		r.relax(item.id)
	}
}

// relax tries to improve every neighbour of u through each incident edge.
func (r *runner) relax(u string) {
	du := r.distance(u)
	for _, idx := range r.options.Adjacency.Incident(u) {
		e := r.edges[idx]
		if e.Distance >= r.options.InfEdgeThreshold {
			continue
		}

		v := core.Neighbor(e, u)
		cand := du + e.Distance
		if cand > r.options.MaxDistance {
			continue
		}
		// Strict “<”: equal candidates, and self-loops, change nothing.
		if cand >= r.distance(v) {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.pq.Enqueue(entry{id: v, dist: cand})
	}
}

// path walks predecessor links back from endID to startID.
// A missing link means endID was never reached. The walk is bounded by the
// number of links so malformed input cannot loop forever.
func (r *runner) path(startID, endID string) []string {
	// With MaxDistance, prev may hold a node relaxed but never settled.
	if endID != startID && !r.settled[endID] {
		return []string{}
	}

	rev := []string{endID}
	cur := endID
	for steps := 0; cur != startID; steps++ {
		p, ok := r.prev[cur]
		if !ok || steps > len(r.prev) {
			return []string{}
		}
		rev = append(rev, p)
		cur = p
	}

	out := make([]string, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}
