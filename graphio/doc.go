// Package graphio reads and writes graph definition documents.
//
// A document lists nodes and the paths (undirected weighted edges) between
// them, in YAML or JSON:
//
//	nodes:
//	  - id: 53971515-7947-427e-b63a-8be1fdf62667   # optional
//	    name: City 1
//	    x: 0
//	    y: 0
//	paths:
//	  - from: City 1        # node id or node name
//	    to: City 3
//	    distance: 10
//	    waypoints: [{x: 0, y: 0}, {x: 10, y: 5}]
//
// Decoding rules:
//
//   - A node without an id receives a fresh random uuid.
//   - Path endpoints resolve against node ids first, then node names.
//     An empty or missing endpoint is rejected with core.ErrUnknownNode.
//   - Every path must carry a distance; a missing one fails with
//     ErrMissingDistance. An explicit 0 is accepted.
//   - The decoded graph must pass core.Validate (unique ids, known endpoints,
//     finite non-negative distances).
//
// Encoding always writes resolved node ids, so an encoded document decodes
// to the same graph.
package graphio
