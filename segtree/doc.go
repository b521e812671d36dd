/*
Package segtree provides a segment tree over monoid values.

A segment tree stores a sequence of N values in the leaves of a complete binary
tree. Every inner node holds the monoid sum of its two children, therefore any
half-open range [begin, end) of the sequence is covered by O(log N) nodes.
Setting a value and querying a range both run in O(log N), building the tree
from an initial sequence runs in O(N).

The tree is laid out implicitly in a flat slice of 2L-1 values, where L is the
smallest power of two not less than N. Node k has children 2k+1 and 2k+2, the
leaves occupy [L-1, L-1+N). Leaves beyond N hold the neutral element.

The monoid need not be commutative: queries add up nodes strictly from left to
right.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package segtree

import (
	"github.com/npillmayer/monoidal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the module's core-tracer.
func tracer() tracing.Trace {
	return monoidal.T()
}
