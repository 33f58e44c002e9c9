// File: types.go
// Role: Node, Point, Edge and Graph value types, sentinel errors, lookups.
// Policy:
//   - Plain values, no hidden state, no locks.
//   - Lookups are linear scans; graphs here are display-scale.

package core

import "errors"

// Sentinel errors for graph validation and lookups.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates two nodes share the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrUnknownNode indicates an edge endpoint or lookup referenced a non-existent node.
	ErrUnknownNode = errors.New("core: unknown node")

	// ErrNegativeDistance indicates an edge weight below zero.
	ErrNegativeDistance = errors.New("core: negative edge distance")

	// ErrBadDistance indicates an edge weight that is NaN or infinite.
	ErrBadDistance = errors.New("core: edge distance is not finite")
)

// Point is a 2D coordinate used for node placement and edge waypoints.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node is a named location in the graph.
//
// ID uniquely identifies the node; X and Y place it on the map;
// Name is for display and human lookups.
type Node struct {
	ID   string  `json:"id" yaml:"id"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Name string  `json:"name" yaml:"name"`
}

// Position returns the node's coordinates as a Point.
func (n Node) Position() Point { return Point{X: n.X, Y: n.Y} }

// Edge is an undirected, weighted connection between two nodes.
//
// Distance is the weight used by shortest-path search and must be
// non-negative. Waypoints describe how to draw the edge and play no part
// in distance computation.
type Edge struct {
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Waypoints []Point `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
	Distance  float64 `json:"distance" yaml:"distance"`
}

// Touches reports whether id is one of the edge's endpoints.
func (e Edge) Touches(id string) bool { return e.From == id || e.To == id }

// Joins reports whether the edge connects a and b, in either direction.
func (e Edge) Joins(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Neighbor returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id. If id is not an endpoint,
// Neighbor returns e.To.
func Neighbor(e Edge, id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// Graph is a static collection of nodes and the edges between them.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"paths" yaml:"paths"`
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.Nodes) }

// Node returns the node with the given ID.
//
// Complexity: O(V).
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return Node{}, false
}

// Lookup resolves ref as a node ID first and, failing that, as a node Name.
// Names are matched exactly; the first node carrying the name wins.
// An empty ref matches nothing, not even an unnamed node.
//
// Complexity: O(V).
func (g *Graph) Lookup(ref string) (Node, bool) {
	if ref == "" {
		return Node{}, false
	}
	if n, ok := g.Node(ref); ok {
		return n, true
	}
	for _, n := range g.Nodes {
		if n.Name == ref {
			return n, true
		}
	}

	return Node{}, false
}

// Validate checks the graph with the package-level Validate.
func (g *Graph) Validate() error { return Validate(g.Nodes, g.Edges) }
