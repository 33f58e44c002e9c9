// Package highlight maps a shortest path onto the edges a front end should
// draw as highlighted.
//
// A path is a sequence of node IDs. Every consecutive pair (p[i], p[i+1])
// is an unordered key; an edge is highlighted when its endpoints form one
// of those keys, in either direction. When parallel edges join the same
// pair, all of them are highlighted, which is how the interactive map
// behaves.
//
// Weight recomputes a path's cost from the edge list, taking the lightest
// edge for each pair. It is the check a caller uses to report or verify a
// path independently of the engine that produced it.
package highlight
