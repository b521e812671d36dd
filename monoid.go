package monoidal

import "cmp"

// Monoid defines how values are aggregated.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid[M any] interface {
	Zero() M
	Add(left, right M) M
}

// Group is a monoid with inverses. Sub has to undo Add:
//
//	Add(Sub(s, t), t) == s
//
// Fenwick trees need groups, as they express point updates as deltas and
// ranges as differences of prefix sums.
type Group[M any] interface {
	Monoid[M]
	Sub(left, right M) M
}

// Ordered is an optional capability of a group, comparing two values the way
// cmp.Compare does. Searching a Fenwick tree requires it.
type Ordered[M any] interface {
	Compare(a, b M) int
}

// RootedMonoid is a monoid over aggregates of subtrees. AddRoot promotes the
// combined aggregate of a vertex' subtrees to an aggregate of the subtree
// rooted at the vertex. AddRoot is not required to be associative in any sense.
type RootedMonoid[M any] interface {
	Monoid[M]
	AddRoot(M) M
}

// Integer is a constraint permitting all built-in integer kinds.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is a constraint permitting all built-in integer and float kinds.
type Number interface {
	Integer | ~float32 | ~float64
}

// Fold adds up values strictly from left to right, starting with m.Zero().
func Fold[M any](m Monoid[M], values ...M) M {
	acc := m.Zero()
	for _, v := range values {
		acc = m.Add(acc, v)
	}
	return acc
}

// --- Standard monoids ------------------------------------------------------

// Sum is the additive group of a number type. It is ordered.
type Sum[T Number] struct{}

func (Sum[T]) Zero() T             { return 0 }
func (Sum[T]) Add(left, right T) T { return left + right }
func (Sum[T]) Sub(left, right T) T { return left - right }
func (Sum[T]) Compare(a, b T) int  { return cmp.Compare(a, b) }

// Xor is the group of integers under bitwise exclusive or. Every value is its
// own inverse.
type Xor[T Integer] struct{}

func (Xor[T]) Zero() T             { return 0 }
func (Xor[T]) Add(left, right T) T { return left ^ right }
func (Xor[T]) Sub(left, right T) T { return left ^ right }

// Min selects the minimum of two values. Top is the neutral element and has
// to be at least as large as every value in use, e.g. math.MaxInt.
type Min[T cmp.Ordered] struct {
	Top T
}

func (m Min[T]) Zero() T           { return m.Top }
func (Min[T]) Add(left, right T) T { return min(left, right) }

// Max selects the maximum of two values. Bottom is the neutral element and has
// to be at most as large as every value in use.
type Max[T cmp.Ordered] struct {
	Bottom T
}

func (m Max[T]) Zero() T           { return m.Bottom }
func (Max[T]) Add(left, right T) T { return max(left, right) }

// Funcs is a monoid assembled from a neutral element and an add function.
type Funcs[M any] struct {
	zero M
	add  func(left, right M) M
}

// MonoidOf creates a monoid from a neutral element and an associative add
// function. It returns nil if add is nil.
func MonoidOf[M any](zero M, add func(left, right M) M) Monoid[M] {
	if add == nil {
		return nil
	}
	return Funcs[M]{zero: zero, add: add}
}

func (f Funcs[M]) Zero() M             { return f.zero }
func (f Funcs[M]) Add(left, right M) M { return f.add(left, right) }
