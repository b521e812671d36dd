/*
Package monoidal provides the algebra shared by a small family of aggregate
data structures: segment trees, Fenwick trees and tree rerooting.

Monoids

All structures in this module are generic over a value type M together with
an associative operation and a neutral element for it, i.e. a monoid.
Clients describe the monoid by implementing

	type Monoid[M any] interface {
	    Zero() M
	    Add(left, right M) M
	}

For values s, t, u, Add has to be associative:

	Add(Add(s, t), u) == Add(s, Add(t, u))

and Zero has to be neutral:

	Add(Zero(), s) == s == Add(s, Zero())

Add need not be commutative for package segtree, which folds strictly left to
right. Package fenwick additionally needs an inverse (see Group), package reroot
needs a way to fold a vertex into an aggregate of its subtrees (see RootedMonoid).

Sub-packages

  - segtree: point update and range query over a sequence of monoid values
  - fenwick: prefix sums, range sums and lower bound search over groups, in 1D and 2D
  - reroot: tree DP values for every vertex taken as the root, in linear time

None of the structures is safe for concurrent mutation. Clients needing shared
access should wrap them with a sync.RWMutex at the call boundary.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package monoidal

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
