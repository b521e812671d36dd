package segtree

import (
	"fmt"

	"github.com/npillmayer/monoidal"
)

// Check validates the structural tree invariants, using eq to compare values:
// every inner node has to hold the sum of its children, every leaf beyond the
// logical length has to hold Zero().
//
// This checker is intended to be used in tests.
func (t *Tree[M]) Check(eq func(a, b M) bool) error {
	if t == nil || t.monoid == nil {
		return fmt.Errorf("%w: nil tree", monoidal.ErrInvalidConfig)
	}
	if len(t.nodes) != 2*t.leaves-1 || t.leaves < t.n || t.leaves&(t.leaves-1) != 0 {
		return fmt.Errorf("%w: %d nodes for %d leaves holding %d values",
			monoidal.ErrInvalidConfig, len(t.nodes), t.leaves, t.n)
	}
	first := t.leaves - 1
	zero := t.monoid.Zero()
	for i := first + t.n; i < len(t.nodes); i++ {
		if !eq(t.nodes[i], zero) {
			return fmt.Errorf("%w: padding leaf %d is not neutral", monoidal.ErrInvalidConfig, i-first)
		}
	}
	for k := first - 1; k >= 0; k-- {
		if !eq(t.nodes[k], t.monoid.Add(t.nodes[2*k+1], t.nodes[2*k+2])) {
			return fmt.Errorf("%w: node %d does not hold the sum of its children",
				monoidal.ErrInvalidConfig, k)
		}
	}
	return nil
}
