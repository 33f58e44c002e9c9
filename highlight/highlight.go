package highlight

import (
	"math"

	"github.com/katalvlaran/pathlight/core"
)

// pair is an unordered node-ID pair stored with a <= b.
type pair struct{ a, b string }

func makePair(x, y string) pair {
	if y < x {
		x, y = y, x
	}

	return pair{a: x, b: y}
}

// Set holds the consecutive node pairs of a path.
type Set map[pair]struct{}

// Pairs returns the unordered consecutive pairs of path.
// Paths with fewer than two nodes produce an empty set.
func Pairs(path []string) Set {
	s := make(Set, len(path))
	for i := 0; i+1 < len(path); i++ {
		s[makePair(path[i], path[i+1])] = struct{}{}
	}

	return s
}

// Contains reports whether e joins a consecutive pair of the path.
func (s Set) Contains(e core.Edge) bool {
	_, ok := s[makePair(e.From, e.To)]
	return ok
}

// Len returns the number of distinct pairs.
func (s Set) Len() int { return len(s) }

// Edges returns the indices, in input order, of every edge lying on path.
func Edges(edges []core.Edge, path []string) []int {
	s := Pairs(path)
	if s.Len() == 0 {
		return []int{}
	}

	out := make([]int, 0, s.Len())
	for i, e := range edges {
		if s.Contains(e) {
			out = append(out, i)
		}
	}

	return out
}

// Weight sums the lightest joining edge for each consecutive pair of path.
// It returns false if some pair is not joined by any edge. A single-node
// path weighs zero; an empty path weighs +Inf and reports false.
func Weight(edges []core.Edge, path []string) (float64, bool) {
	if len(path) == 0 {
		return math.Inf(1), false
	}

	best := make(map[pair]float64, len(path))
	for _, e := range edges {
		k := makePair(e.From, e.To)
		if d, ok := best[k]; !ok || e.Distance < d {
			best[k] = e.Distance
		}
	}

	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		d, ok := best[makePair(path[i], path[i+1])]
		if !ok {
			return math.Inf(1), false
		}
		total += d
	}

	return total, true
}
