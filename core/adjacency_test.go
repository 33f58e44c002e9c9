package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathlight/core"
)

func TestNewAdjacency_Undirected(t *testing.T) {
	edges := []core.Edge{
		{From: "A", To: "B", Distance: 5},
		{From: "A", To: "B", Distance: 3}, // parallel
		{From: "B", To: "C", Distance: 1},
		{From: "A", To: "A", Distance: 7}, // self-loop
	}
	adj := core.NewAdjacency(edges)

	assert.Equal(t, []int{0, 1, 3}, adj.Incident("A"))
	assert.Equal(t, []int{0, 1, 2}, adj.Incident("B"))
	assert.Equal(t, []int{2}, adj.Incident("C"))
	assert.Nil(t, adj.Incident("Z"))
	assert.Equal(t, 3, adj.Degree("A"))
	assert.Equal(t, 0, adj.Degree("Z"))
}

// TestNewAdjacency_MatchesLinearScan checks the index against the
// scan-every-edge definition of incidence.
func TestNewAdjacency_MatchesLinearScan(t *testing.T) {
	edges := []core.Edge{
		{From: "A", To: "B"}, {From: "C", To: "A"}, {From: "C", To: "D"},
		{From: "D", To: "D"}, {From: "B", To: "D"}, {From: "E", To: "A"},
	}
	adj := core.NewAdjacency(edges)

	for _, id := range []string{"A", "B", "C", "D", "E", "F"} {
		var want []int
		for i, e := range edges {
			if e.Touches(id) {
				want = append(want, i)
			}
		}
		assert.Equal(t, want, adj.Incident(id), "incident edges of %s", id)
	}
}

func TestNewAdjacency_Empty(t *testing.T) {
	adj := core.NewAdjacency(nil)
	assert.Empty(t, adj)
}
