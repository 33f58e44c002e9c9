package pqueue

import "container/heap"

// Less reports whether a must be dequeued before b.
type Less[T any] func(a, b T) bool

// PriorityQueue is a binary min-heap ordered by a caller-supplied Less.
// The zero value is not usable; construct with New.
type PriorityQueue[T any] struct {
	items store[T]
}

// New returns an empty queue ordered by less.
// Panics if less is nil, since no ordering can be derived without it.
//
// Complexity: O(1).
func New[T any](less Less[T]) *PriorityQueue[T] {
	if less == nil {
		panic("pqueue: less function is nil")
	}

	return &PriorityQueue[T]{items: store[T]{less: less}}
}

// Enqueue inserts v. Duplicates are permitted.
//
// Complexity: O(log n) amortized.
func (q *PriorityQueue[T]) Enqueue(v T) {
	heap.Push(&q.items, v)
}

// Dequeue removes and returns the element no other element orders before.
// On an empty queue it returns the zero value of T and false.
//
// Complexity: O(log n).
func (q *PriorityQueue[T]) Dequeue() (T, bool) {
	if q.IsEmpty() {
		var zero T
		return zero, false
	}

	return heap.Pop(&q.items).(T), true
}

// IsEmpty reports whether the queue holds no elements.
func (q *PriorityQueue[T]) IsEmpty() bool { return len(q.items.data) == 0 }

// Len returns the number of queued elements, stale duplicates included.
func (q *PriorityQueue[T]) Len() int { return len(q.items.data) }

// store adapts a slice and its ordering to heap.Interface.
// heap.Push appends then sifts up; heap.Pop swaps root with last,
// sinks the new root, then removes the tail via store.Pop.
type store[T any] struct {
	data []T
	less Less[T]
}

// Len returns the number of items in the heap.
func (s store[T]) Len() int { return len(s.data) }

// Less delegates to the caller-supplied ordering.
func (s store[T]) Less(i, j int) bool { return s.less(s.data[i], s.data[j]) }

// Swap swaps two elements in the heap.
func (s store[T]) Swap(i, j int) { s.data[i], s.data[j] = s.data[j], s.data[i] }

// Push appends x; called by heap.Push only.
func (s *store[T]) Push(x any) { s.data = append(s.data, x.(T)) }

// Pop removes the tail; called by heap.Pop only.
func (s *store[T]) Pop() any {
	old := s.data
	n := len(old)
	item := old[n-1]

	var zero T
	old[n-1] = zero // release references held by the backing array
	s.data = old[:n-1]

	return item
}
