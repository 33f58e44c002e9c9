// Package pqueue_test contains unit tests for the generic priority queue.
// They cover the empty sentinel, ordering under interleaved operations,
// duplicates and custom element types.
package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlight/pqueue"
)

func intLess(a, b int) bool { return a < b }

// TestNew_NilLessPanics verifies that a queue cannot be built without an ordering.
func TestNew_NilLessPanics(t *testing.T) {
	assert.Panics(t, func() { pqueue.New[int](nil) })
}

// TestDequeue_Empty verifies the empty sentinel on a fresh and on a drained queue.
func TestDequeue_Empty(t *testing.T) {
	q := pqueue.New(intLess)
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())

	v, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Zero(t, v)

	q.Enqueue(7)
	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	// Drained again: still no panic.
	assert.NotPanics(t, func() {
		_, ok = q.Dequeue()
	})
	assert.False(t, ok)
	assert.True(t, q.IsEmpty())
}

// TestDequeue_SortedOrder verifies that a batch of enqueues drains in ascending order.
func TestDequeue_SortedOrder(t *testing.T) {
	q := pqueue.New(intLess)
	in := []int{5, 3, 9, 1, 4, 1, 8, 2, 7, 6, 0}
	for _, v := range in {
		q.Enqueue(v)
	}
	require.Equal(t, len(in), q.Len())

	var out []int
	for !q.IsEmpty() {
		v, ok := q.Dequeue()
		require.True(t, ok)
		out = append(out, v)
	}

	want := append([]int(nil), in...)
	sort.Ints(want)
	assert.Equal(t, want, out)
}

// TestDequeue_Duplicates verifies duplicates are kept, not collapsed.
func TestDequeue_Duplicates(t *testing.T) {
	q := pqueue.New(intLess)
	for i := 0; i < 4; i++ {
		q.Enqueue(2)
	}
	q.Enqueue(1)

	assert.Equal(t, 5, q.Len())
	v, _ := q.Dequeue()
	assert.Equal(t, 1, v)
	for i := 0; i < 4; i++ {
		v, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 2, v)
	}
	assert.True(t, q.IsEmpty())
}

// TestDequeue_MaxHeapOrdering verifies the queue follows whatever ordering it is given.
func TestDequeue_MaxHeapOrdering(t *testing.T) {
	q := pqueue.New(func(a, b int) bool { return a > b })
	for _, v := range []int{1, 10, 5, 7} {
		q.Enqueue(v)
	}

	got := make([]int, 0, 4)
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		got = append(got, v)
	}
	assert.Equal(t, []int{10, 7, 5, 1}, got)
}

// TestDequeue_StructElements verifies ordering by a field of a struct element.
func TestDequeue_StructElements(t *testing.T) {
	type entry struct {
		id   string
		dist float64
	}
	q := pqueue.New(func(a, b entry) bool { return a.dist < b.dist })
	q.Enqueue(entry{"far", 12.5})
	q.Enqueue(entry{"near", 0.5})
	q.Enqueue(entry{"mid", 3})

	first, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "near", first.id)
	second, _ := q.Dequeue()
	assert.Equal(t, "mid", second.id)
	third, _ := q.Dequeue()
	assert.Equal(t, "far", third.id)
}

// TestInterleaved_NeverAboveRemaining checks, for random interleavings of
// enqueue and dequeue, that every dequeued element is no greater than any
// element still in the queue at that moment.
func TestInterleaved_NeverAboveRemaining(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		q := pqueue.New(intLess)
		var shadow []int // mirror of the queue contents

		for step := 0; step < 60; step++ {
			if r.Intn(3) > 0 || len(shadow) == 0 {
				v := r.Intn(50)
				q.Enqueue(v)
				shadow = append(shadow, v)
				continue
			}

			v, ok := q.Dequeue()
			require.True(t, ok)

			// Remove one occurrence of v from the shadow.
			idx := -1
			for i, s := range shadow {
				if s == v {
					idx = i
					break
				}
			}
			require.NotEqual(t, -1, idx, "dequeued %d was never enqueued", v)
			shadow = append(shadow[:idx], shadow[idx+1:]...)

			for _, rest := range shadow {
				require.False(t, intLess(rest, v), "round %d: dequeued %d while %d remained", round, v, rest)
			}
			require.Equal(t, len(shadow), q.Len())
		}
	}
}
