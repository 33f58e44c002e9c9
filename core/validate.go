package core

import (
	"fmt"
	"math"
)

// Validate checks that nodes carry unique, non-empty IDs and that every edge
// joins two known nodes with a finite, non-negative distance.
// The first violation is returned, wrapped around its sentinel error.
//
// Complexity: O(V + E).
func Validate(nodes []Node, edges []Edge) error {
	// 1) Node identities.
	known := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: node #%d (%q)", ErrEmptyNodeID, i, n.Name)
		}
		if _, dup := known[n.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		known[n.ID] = struct{}{}
	}

	// 2) Edge endpoints and weights.
	for i, e := range edges {
		if _, ok := known[e.From]; !ok {
			return fmt.Errorf("%w: edge #%d from %q", ErrUnknownNode, i, e.From)
		}
		if _, ok := known[e.To]; !ok {
			return fmt.Errorf("%w: edge #%d to %q", ErrUnknownNode, i, e.To)
		}
		if math.IsNaN(e.Distance) || math.IsInf(e.Distance, 0) {
			return fmt.Errorf("%w: edge #%d %s-%s distance=%v", ErrBadDistance, i, e.From, e.To, e.Distance)
		}
		if e.Distance < 0 {
			return fmt.Errorf("%w: edge #%d %s-%s distance=%v", ErrNegativeDistance, i, e.From, e.To, e.Distance)
		}
	}

	return nil
}
