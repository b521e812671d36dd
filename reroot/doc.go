/*
Package reroot computes a tree DP value for every vertex of a tree, as if the
vertex was the root of the tree.

Clients describe the DP by a monoidal.RootedMonoid: Add combines the
aggregates of sibling subtrees, AddRoot extends the combined aggregate of a
vertex' subtrees by the vertex itself. A naive approach runs a DFS for every
root and takes O(N²). Tree.Solve takes O(N) monoid operations, using two
passes over the tree:

  - a post-order pass computes the aggregate of every subtree, with the tree
    rooted at vertex 0
  - a pre-order pass hands every vertex the aggregate of the tree "above" it,
    i.e. of the part reachable through its parent. Prefix and suffix sums over
    the neighbour aggregates of a vertex yield, for every neighbour, the sum of
    all the other neighbours in O(degree).

Both passes are iterative, deep or skewed trees do not exhaust the goroutine
stack.

The monoid is assumed to be commutative, as neighbours are visited in the
order of the adjacency list.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package reroot

import (
	"github.com/npillmayer/monoidal"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the module's core-tracer.
func tracer() tracing.Trace {
	return monoidal.T()
}
