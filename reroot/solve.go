package reroot

// Solve returns, for every vertex v, the DP value of the tree rooted at v.
//
// Solve recomputes everything from scratch, calling it repeatedly yields
// identical results.
func (t *Tree[M]) Solve() []M {
	n := len(t.adj)
	tracer().Debugf("reroot: solving tree of %d vertices", n)
	result := make([]M, n)
	if n == 0 {
		return result
	}
	contrib, _ := t.collect()
	m := t.monoid
	var prefix, suffix []M
	for _, v := range t.order {
		// contrib[v][t.up[v]] has been set by the parent of v; it is Zero() for the root
		c := contrib[v]
		d := len(c)
		prefix, suffix = grow(prefix, d+1), grow(suffix, d+1)
		prefix[0], suffix[d] = m.Zero(), m.Zero()
		for i := range d {
			prefix[i+1] = m.Add(prefix[i], c[i])
		}
		for i := d - 1; i >= 0; i-- {
			suffix[i] = m.Add(c[i], suffix[i+1])
		}
		result[v] = m.AddRoot(prefix[d])
		for i, u := range t.adj[v] {
			if i == t.up[v] {
				continue
			}
			contrib[u][t.up[u]] = m.AddRoot(m.Add(prefix[i], suffix[i+1]))
		}
	}
	return result
}

// Subtrees returns, for every vertex v, the DP value of the subtree of v, with
// the tree rooted at vertex 0. The first entry therefore equals Solve()[0].
func (t *Tree[M]) Subtrees() []M {
	_, sub := t.collect()
	return sub
}

// collect is the post-order pass. It returns the subtree aggregates and, for
// every vertex, the contributions of its neighbours aligned with its
// adjacency list. Parent slots are left at Zero().
func (t *Tree[M]) collect() ([][]M, []M) {
	n := len(t.adj)
	m := t.monoid
	zero := m.Zero()
	contrib := make([][]M, n)
	for v, neighbours := range t.adj {
		contrib[v] = make([]M, len(neighbours))
		for i := range contrib[v] {
			contrib[v][i] = zero
		}
	}
	sub := make([]M, n)
	for k := len(t.order) - 1; k >= 0; k-- {
		v := t.order[k]
		acc := zero
		for _, x := range contrib[v] {
			acc = m.Add(acc, x)
		}
		sub[v] = m.AddRoot(acc)
		if p := t.parent[v]; p >= 0 {
			contrib[p][t.down[v]] = sub[v]
		}
	}
	return contrib, sub
}

func grow[M any](buf []M, n int) []M {
	if cap(buf) < n {
		return make([]M, n)
	}
	return buf[:n]
}
