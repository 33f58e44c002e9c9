package core

// Adjacency maps a node ID to the indices of edges incident to it, in
// ascending edge order. It is derived data: build it once per static edge
// set and share it read-only.
type Adjacency map[string][]int

// NewAdjacency indexes edges by endpoint. Each edge is listed under both
// endpoints; a self-loop is listed once under its single endpoint.
// Endpoints that name no node are indexed all the same.
//
// Complexity: O(E) time and space.
func NewAdjacency(edges []Edge) Adjacency {
	adj := make(Adjacency)
	for i, e := range edges {
		adj[e.From] = append(adj[e.From], i)
		if e.To != e.From {
			adj[e.To] = append(adj[e.To], i)
		}
	}

	return adj
}

// Incident returns the indices of edges touching id, or nil if none.
// The returned slice is shared; callers must not modify it.
func (a Adjacency) Incident(id string) []int { return a[id] }

// Degree returns the number of edges touching id.
func (a Adjacency) Degree(id string) int { return len(a[id]) }
