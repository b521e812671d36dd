package monoidal

import "errors"

var (
	// ErrIndexOutOfBounds signals a positional index outside of [0, N).
	ErrIndexOutOfBounds = errors.New("monoidal: index out of bounds")
	// ErrInvalidRange signals range bounds violating 0 <= begin <= end <= N.
	ErrInvalidRange = errors.New("monoidal: invalid range")
	// ErrInvalidConfig signals an invalid structure configuration, e.g. a missing monoid.
	ErrInvalidConfig = errors.New("monoidal: invalid configuration")
	// ErrInvalidTree signals an input graph which is not a simple connected tree.
	ErrInvalidTree = errors.New("monoidal: not a tree")
	// ErrNegativeValue signals that a search requiring non-negative elements
	// found a negative one.
	ErrNegativeValue = errors.New("monoidal: negative element")
	// ErrNotOrdered signals that an operation needs an ordered group, but the
	// group in use does not implement Ordered.
	ErrNotOrdered = errors.New("monoidal: group is not ordered")
)
