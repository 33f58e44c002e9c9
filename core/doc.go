// Package core defines the graph data model shared by every pathlight package:
// named nodes placed on a 2D plane, undirected weighted edges (“paths”) between
// them, and an on-demand adjacency index.
//
// The model is plain data. Graphs are built once, handed to the shortest-path
// engine whole on each query, and never mutated afterwards. Nothing here takes
// locks: concurrent readers are safe as long as nobody writes.
//
// Types:
//
//   - Node      – identity (ID, usually a uuid), position (X, Y), display Name.
//   - Point     – a 2D waypoint.
//   - Edge      – undirected connection From-To with a non-negative Distance
//     (the weight) and Waypoints used only for rendering.
//   - Graph     – Nodes + Edges with read-only lookups.
//   - Adjacency – node ID → indices of incident edges, built in O(E).
//
// Undirected semantics:
//
//	An Edge{From: "A", To: "B"} is traversable in both directions.
//	Neighbor(e, "A") == "B" and Neighbor(e, "B") == "A".
//	Self-loops (From == To) are legal input and index once.
//
// Validation:
//
//	Validate is optional and never called by the engine. Loaders and servers
//	call it before accepting a graph. It reports, in order of detection:
//	  ErrEmptyNodeID      – a node without an ID.
//	  ErrDuplicateNode    – two nodes share an ID.
//	  ErrUnknownNode      – an edge endpoint names no node.
//	  ErrNegativeDistance – an edge weight below zero.
//	  ErrBadDistance      – an edge weight that is NaN or infinite.
package core
