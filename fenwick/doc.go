/*
Package fenwick provides lists and grids of numbers supporting prefix sums.

Both structures are binary indexed trees (Fenwick trees). Updating one element
and summing up a prefix each touch O(log n) accumulator slots, where a plain
array would need O(1) for the update but O(n) for the sum. The accumulator is
1-indexed; slot i sums up the i&-i elements ending at position i. Updates
walk upwards by i += i&-i, prefix sums walk downwards by i -= i&-i.

Elements may be of any type forming a group (see monoidal.Group), as
updates are expressed as deltas and range sums as differences of prefix sums.
Lists over an ordered group additionally support a lower bound search
for a prefix sum in O(log n).

Grid applies the same scheme independently along rows and columns.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package fenwick

import (
	"github.com/npillmayer/monoidal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the module's core-tracer.
func tracer() tracing.Trace {
	return monoidal.T()
}
