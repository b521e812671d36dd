package segtree

import (
	"fmt"

	"github.com/npillmayer/monoidal"
)

// Tree is a segment tree over values of type M.
//
// The zero value is not usable, create trees with New.
type Tree[M any] struct {
	monoid monoidal.Monoid[M]
	nodes  []M // 2*leaves-1 nodes, leaves at the end
	leaves int // power of two, >= n
	n      int // logical length
}

// New creates a tree holding values, using m to aggregate them.
func New[M any](m monoidal.Monoid[M], values ...M) (*Tree[M], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: monoid is required", monoidal.ErrInvalidConfig)
	}
	leaves := 1
	for leaves < len(values) {
		leaves <<= 1
	}
	t := &Tree[M]{
		monoid: m,
		nodes:  make([]M, 2*leaves-1),
		leaves: leaves,
		n:      len(values),
	}
	first := leaves - 1
	copy(t.nodes[first:], values)
	for i := first + len(values); i < len(t.nodes); i++ {
		t.nodes[i] = m.Zero()
	}
	for k := first - 1; k >= 0; k-- {
		t.nodes[k] = m.Add(t.nodes[2*k+1], t.nodes[2*k+2])
	}
	tracer().Debugf("segtree: built tree with %d values on %d leaves", t.n, leaves)
	return t, nil
}

// Len returns the number of values in the tree.
func (t *Tree[M]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Summary returns the sum of all values, or Zero() for an empty tree.
// A nil tree yields the zero value of M.
func (t *Tree[M]) Summary() M {
	if t == nil || len(t.nodes) == 0 {
		var zero M
		return zero
	}
	return t.nodes[0]
}

// Get returns the value at index.
func (t *Tree[M]) Get(index int) (M, error) {
	if err := t.checkIndex(index); err != nil {
		var zero M
		return zero, err
	}
	return t.nodes[t.leaves-1+index], nil
}

// Set replaces the value at index and updates all the ancestors of its leaf.
func (t *Tree[M]) Set(index int, value M) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	k := t.leaves - 1 + index
	t.nodes[k] = value
	for k > 0 {
		k = (k - 1) / 2
		t.nodes[k] = t.monoid.Add(t.nodes[2*k+1], t.nodes[2*k+2])
	}
	return nil
}

// Query returns the sum of the values in [begin, end). Empty ranges are
// rejected with ErrInvalidRange.
func (t *Tree[M]) Query(begin, end int) (M, error) {
	if begin < 0 || end > t.n || begin >= end {
		var zero M
		return zero, fmt.Errorf("%w: [%d, %d) in tree of length %d",
			monoidal.ErrInvalidRange, begin, end, t.n)
	}
	return t.query(begin, end, 0, 0, t.leaves), nil
}

// query sums up the part of [begin, end) covered by node k, which spans the
// leaves [l, r).
func (t *Tree[M]) query(begin, end, k, l, r int) M {
	if r <= begin || end <= l {
		return t.monoid.Zero()
	}
	if begin <= l && r <= end {
		return t.nodes[k]
	}
	mid := l + (r-l)/2
	left := t.query(begin, end, 2*k+1, l, mid)
	right := t.query(begin, end, 2*k+2, mid, r)
	return t.monoid.Add(left, right)
}

// MaxRight returns the largest end in [begin, N] for which pred holds on the
// sum of [begin, end). pred has to hold for Zero() and must be monotone, i.e.
// once it fails for some end it fails for every larger end.
//
// MaxRight runs in O(log N).
func (t *Tree[M]) MaxRight(begin int, pred func(M) bool) (int, error) {
	if begin < 0 || begin > t.n {
		return 0, fmt.Errorf("%w: begin %d in tree of length %d",
			monoidal.ErrInvalidRange, begin, t.n)
	}
	if pred == nil || !pred(t.monoid.Zero()) {
		return 0, fmt.Errorf("%w: predicate has to accept the neutral element",
			monoidal.ErrInvalidConfig)
	}
	acc := t.monoid.Zero()
	if end, found := t.maxRight(begin, pred, &acc, 0, 0, t.leaves); found {
		return end, nil
	}
	return t.n, nil
}

func (t *Tree[M]) maxRight(begin int, pred func(M) bool, acc *M, k, l, r int) (int, bool) {
	if r <= begin {
		return 0, false
	}
	if begin <= l {
		if sum := t.monoid.Add(*acc, t.nodes[k]); pred(sum) {
			*acc = sum
			return 0, false
		}
		if r-l == 1 {
			return l, true
		}
	}
	mid := l + (r-l)/2
	if end, found := t.maxRight(begin, pred, acc, 2*k+1, l, mid); found {
		return end, true
	}
	return t.maxRight(begin, pred, acc, 2*k+2, mid, r)
}

func (t *Tree[M]) checkIndex(index int) error {
	if index < 0 || index >= t.n {
		return fmt.Errorf("%w: %d in tree of length %d", monoidal.ErrIndexOutOfBounds, index, t.n)
	}
	return nil
}
