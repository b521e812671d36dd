package fenwick

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/monoidal"
)

// List represents a list of group elements with support for efficient
// prefix sum computation. Create lists with New or FromSlice.
//
// The group has to be commutative, as node sums are combined in an order
// different from the order of the list.
type List[T any] struct {
	group monoidal.Group[T]
	order monoidal.Ordered[T] // nil for unordered groups
	// tree is 1-indexed: slot i covers the i&-i elements ending at
	// element i-1. A prefix of length k is the sum of the slots visited
	// by stepping k, k-(k&-k), … down to 0, one slot per 1 bit of k.
	tree []T
	// elems holds the exact element values. Get and the sign bookkeeping
	// read them instead of differences of prefix sums, which may be
	// rounded for float groups.
	elems     []T
	negatives int // count of elements < Zero(), maintained for ordered groups only
}

// New creates a list of n elements, all of them Zero().
func New[T any](g monoidal.Group[T], n int) (*List[T], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: group is required", monoidal.ErrInvalidConfig)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", monoidal.ErrInvalidConfig, n)
	}
	l := newList(g, n)
	tracer().Debugf("fenwick: created list of length %d", n)
	return l, nil
}

// FromSlice creates a new list with the given elements, in O(n).
func FromSlice[T any](g monoidal.Group[T], values []T) (*List[T], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: group is required", monoidal.ErrInvalidConfig)
	}
	n := len(values)
	l := newList(g, n)
	copy(l.tree[1:], values)
	copy(l.elems, values)
	for i := 1; i <= n; i++ {
		if j := i + i&-i; j <= n {
			l.tree[j] = g.Add(l.tree[j], l.tree[i])
		}
	}
	if l.order != nil {
		zero := g.Zero()
		for _, v := range values {
			if l.order.Compare(v, zero) < 0 {
				l.negatives++
			}
		}
	}
	tracer().Debugf("fenwick: built list of length %d", n)
	return l, nil
}

func newList[T any](g monoidal.Group[T], n int) *List[T] {
	l := &List[T]{
		group: g,
		tree:  make([]T, n+1),
		elems: make([]T, n),
	}
	l.order, _ = g.(monoidal.Ordered[T])
	zero := g.Zero()
	for i := range l.tree {
		l.tree[i] = zero
	}
	for i := range l.elems {
		l.elems[i] = zero
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.tree) - 1
}

// Add adds delta to the element at index.
func (l *List[T]) Add(index int, delta T) error {
	if index < 0 || index >= l.Len() {
		return fmt.Errorf("%w: %d in list of length %d", monoidal.ErrIndexOutOfBounds, index, l.Len())
	}
	old := l.elems[index]
	l.elems[index] = l.group.Add(old, delta)
	if l.order != nil {
		l.countSignChange(old, l.elems[index])
	}
	l.add(index, delta)
	return nil
}

func (l *List[T]) add(index int, delta T) {
	n := l.Len()
	for i := index + 1; i <= n; i += i & -i {
		l.tree[i] = l.group.Add(l.tree[i], delta)
	}
}

// Sum returns the sum of the elements from index 0 to index end-1.
func (l *List[T]) Sum(end int) (T, error) {
	if end < 0 || end > l.Len() {
		var zero T
		return zero, fmt.Errorf("%w: prefix of length %d in list of length %d",
			monoidal.ErrInvalidRange, end, l.Len())
	}
	return l.prefix(end), nil
}

func (l *List[T]) prefix(end int) T {
	sum := l.group.Zero()
	for i := end; i > 0; i -= i & -i {
		sum = l.group.Add(sum, l.tree[i])
	}
	return sum
}

// SumRange returns the sum of the elements from index begin to index end-1.
// The sum of an empty range is Zero().
func (l *List[T]) SumRange(begin, end int) (T, error) {
	if begin < 0 || end > l.Len() || begin > end {
		var zero T
		return zero, fmt.Errorf("%w: [%d, %d) in list of length %d",
			monoidal.ErrInvalidRange, begin, end, l.Len())
	}
	return l.group.Sub(l.prefix(end), l.prefix(begin)), nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= l.Len() {
		var zero T
		return zero, fmt.Errorf("%w: %d in list of length %d", monoidal.ErrIndexOutOfBounds, index, l.Len())
	}
	return l.elems[index], nil
}

// Set sets the element at index to value. The tree is updated by adding
// value - Get(index).
func (l *List[T]) Set(index int, value T) error {
	if index < 0 || index >= l.Len() {
		return fmt.Errorf("%w: %d in list of length %d", monoidal.ErrIndexOutOfBounds, index, l.Len())
	}
	old := l.elems[index]
	l.elems[index] = value
	if l.order != nil {
		l.countSignChange(old, value)
	}
	l.add(index, l.group.Sub(value, old))
	return nil
}

func (l *List[T]) countSignChange(old, value T) {
	zero := l.group.Zero()
	if l.order.Compare(old, zero) < 0 {
		l.negatives--
	}
	if l.order.Compare(value, zero) < 0 {
		l.negatives++
	}
}

// LowerBound returns the largest k for which Sum(k) < threshold, which is
// the index of the first element where the running sum reaches threshold.
// If no prefix sum reaches threshold, LowerBound returns Len(); for
// threshold <= Zero() it returns 0.
//
// LowerBound runs in O(log n) and needs an ordered group. The search is
// only valid for lists without negative elements; if the list contains
// any, LowerBound fails with ErrNegativeValue.
func (l *List[T]) LowerBound(threshold T) (int, error) {
	if l.order == nil {
		return 0, monoidal.ErrNotOrdered
	}
	if l.negatives > 0 {
		return 0, fmt.Errorf("%w: %d negative elements in list", monoidal.ErrNegativeValue, l.negatives)
	}
	n := l.Len()
	if n == 0 {
		return 0, nil
	}
	pos, acc := 0, l.group.Zero()
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		next := pos + step
		if next > n {
			continue
		}
		if sum := l.group.Add(acc, l.tree[next]); l.order.Compare(sum, threshold) < 0 {
			pos, acc = next, sum
		}
	}
	return pos, nil
}
