// Package pathlight finds shortest routes on a small weighted map of
// cities and serves them to an interactive front end.
//
// What is pathlight?
//
//	A compact routing toolkit that brings together:
//		• A generic binary-heap priority queue
//		• An undirected graph model: nodes with coordinates, paths with waypoints
//		• Dijkstra's single-pair shortest path with lazy deletion
//		• Edge highlighting for drawing the chosen route
//		• YAML/JSON graph definitions with an embedded seven-city demo
//		• A cobra CLI and a gin HTTP API with slog logging and OpenTelemetry
//
// Layout:
//
//	pqueue/         PriorityQueue[T] over container/heap, comparator-driven
//	core/           Node, Edge, Point, Graph, Adjacency index, Validate
//	dijkstra/       ShortestPath and Route with functional options
//	highlight/      route to edge indices and leg weights
//	graphio/        Load, Decode, Encode, Demo
//	config/         environment configuration
//	observability/  slog logger, route metrics and spans, OTel setup
//	server/         Service, HTTP handlers, router and server lifecycle
//	cmd/pathlight/  route, nodes, paths, export and serve commands
//
// Quick start:
//
//	g := graphio.Demo()
//	c6, _ := g.Lookup("City 6")
//	c7, _ := g.Lookup("City 7")
//	res := dijkstra.Route(g.Nodes, g.Edges, c6.ID, c7.ID)
//	fmt.Println(res.Distance) // 116
//
// The search itself never fails: unknown ids and unreachable targets yield
// an empty path. Validation of input graphs lives in core.Validate and is
// applied by graphio and server, not by the engine.
package pathlight
