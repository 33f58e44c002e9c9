// Package pqueue provides a minimal generic priority queue backed by a binary heap.
//
// The ordering is supplied by the caller as a strict predicate less(a, b),
// which reports whether a must leave the queue before b. Equal contenders
// may leave in either order.
//
// Operations:
//
//   - Enqueue(v)   – insert v; O(log n) amortized, no fixed capacity.
//   - Dequeue()    – remove and return the minimum; O(log n).
//     Returns (zero, false) on an empty queue instead of panicking.
//   - IsEmpty()    – O(1).
//   - Len()        – O(1).
//
// There is deliberately no Peek, no arbitrary removal and no decrease-key.
// Callers that need to lower a priority re-insert the value and skip the
// outdated copy when it surfaces (“lazy deletion”), which is how the
// dijkstra package drives its frontier.
//
// Heap invariant:
//
//	for every parent p and child c: !less(heap[c], heap[p])
//
// It holds after every mutating call: Enqueue sifts the new element up,
// Dequeue swaps the root with the last element and sinks it.
//
// Thread safety:
//
//   - A PriorityQueue is owned by a single caller and is not safe for
//     concurrent use. Create one queue per computation.
//
// Example:
//
//	q := pqueue.New(func(a, b int) bool { return a < b })
//	q.Enqueue(3)
//	q.Enqueue(1)
//	v, ok := q.Dequeue() // v == 1, ok == true
package pqueue
