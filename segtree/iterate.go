package segtree

import "iter"

// All returns an iterator over index/value pairs of the tree, in index order.
//
// The iterator reads the leaves on the fly, so a restarted iteration reflects
// every Set done in between.
func (t *Tree[M]) All() iter.Seq2[int, M] {
	return func(yield func(int, M) bool) {
		if t == nil {
			return
		}
		first := t.leaves - 1
		for i := range t.n {
			if !yield(i, t.nodes[first+i]) {
				return
			}
		}
	}
}

// Values returns a copy of the values of the tree.
func (t *Tree[M]) Values() []M {
	if t == nil {
		return nil
	}
	first := t.leaves - 1
	values := make([]M, t.n)
	copy(values, t.nodes[first:first+t.n])
	return values
}
