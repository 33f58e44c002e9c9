// Package dijkstra computes the minimum-weight path between two nodes of an
// undirected, non-negatively weighted graph.
//
// Overview:
//
//   - ShortestPath(nodes, edges, start, end) returns the node IDs
//     [start, …, end] of one minimum-total-distance path, or an empty slice
//     when end cannot be reached from start.
//   - Route returns the same path together with its total distance.
//   - Both run single-source Dijkstra with an early exit once end is settled.
//
// Algorithm:
//
//  1. dist[start] = 0; every other ID reads as +Inf until relaxed.
//  2. Push (start, 0) onto a pqueue.PriorityQueue ordered by distance.
//  3. Pop the closest entry. Skip it if it is stale (its recorded distance
//     is above the live dist) or its node is already settled. Stop if it is end.
//  4. For every edge touching the popped node u, let v be the other endpoint
//     and cand = dist[u] + edge.Distance. If cand < dist[v], set dist[v] = cand,
//     prev[v] = u and push (v, cand). Old entries for v stay in the heap and
//     are skipped when they surface (lazy deletion, no decrease-key).
//  5. Walk prev back from end to start. A missing link means “no path”.
//
// Edge cases:
//
//   - start == end                → [start], even if start has no edges.
//   - disconnected end            → [] (never nil).
//   - parallel edges              → each relaxes independently; the lighter wins.
//   - self-loops                  → never improve a distance; harmless.
//   - edge to an unknown node ID  → the ID acts as an opaque node at +Inf;
//     other results are unaffected.
//   - ties between shortest paths → any minimal path may be returned.
//
// Options:
//
//   - WithAdjacency(adj)        – reuse a prebuilt core.Adjacency for a static graph.
//   - WithMaxDistance(d)        – do not settle nodes farther than d.
//   - WithInfEdgeThreshold(t)   – treat edges with Distance ≥ t as impassable.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with the adjacency index, built in O(E) per call
//     unless WithAdjacency supplies one.
//   - Space: O(V + E) for dist, prev and the heap under lazy deletion.
//
// Thread safety:
//
//   - Every call owns its distance map, predecessor map and queue. Concurrent
//     calls over the same read-only nodes/edges (and a shared Adjacency) are safe.
//   - Mutating nodes or edges while a call runs is not supported.
//
// Weights must be non-negative. Negative weights are not detected here;
// use core.Validate at the boundary where graphs enter the program.
package dijkstra
