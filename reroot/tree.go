package reroot

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/monoidal"
)

// Tree is an undirected tree of vertices 0 … N-1, prepared for rerooting.
//
// The tree is traversed once at construction time, rooted at vertex 0. The
// structure of the tree cannot be changed afterwards.
type Tree[M any] struct {
	monoid monoidal.RootedMonoid[M]
	adj    [][]int
	order  []int // pre-order, starting at vertex 0
	parent []int // parent vertex, -1 for the root
	up     []int // index of parent in adj[v], -1 for the root
	down   []int // index of v in adj[parent[v]], -1 for the root
}

// New creates a tree from an adjacency list, where adjacency[v] lists the
// neighbours of vertex v. Every edge has to be listed in both directions.
//
// New fails with ErrInvalidTree unless the input is a simple connected tree:
// neighbour ids have to be valid vertices, no self loops, symmetric
// adjacency, exactly N-1 edges.
func New[M any](m monoidal.RootedMonoid[M], adjacency [][]int) (*Tree[M], error) {
	if m == nil {
		return nil, fmt.Errorf("%w: monoid is required", monoidal.ErrInvalidConfig)
	}
	n := len(adjacency)
	t := &Tree[M]{
		monoid: m,
		adj:    make([][]int, n),
		parent: make([]int, n),
		up:     make([]int, n),
		down:   make([]int, n),
	}
	degrees := 0
	for v, neighbours := range adjacency {
		for _, u := range neighbours {
			if u < 0 || u >= n {
				return nil, t.invalid("vertex %d has neighbour %d outside of [0, %d)", v, u, n)
			}
			if u == v {
				return nil, t.invalid("self loop at vertex %d", v)
			}
		}
		t.adj[v] = append([]int(nil), neighbours...)
		degrees += len(neighbours)
	}
	if n > 0 && degrees != 2*(n-1) {
		return nil, t.invalid("%d vertices need %d edges, have %d adjacency entries", n, n-1, degrees)
	}
	if err := t.traverse(); err != nil {
		return nil, err
	}
	tracer().Debugf("reroot: prepared tree of %d vertices", n)
	return t, nil
}

// FromEdges creates a tree of n vertices from a list of undirected edges.
func FromEdges[M any](m monoidal.RootedMonoid[M], n int, edges [][2]int) (*Tree[M], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", monoidal.ErrInvalidConfig, n)
	}
	adjacency := make([][]int, n)
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("%w: edge %d-%d outside of [0, %d)", monoidal.ErrInvalidTree, e[0], e[1], n)
		}
		adjacency[e[0]] = append(adjacency[e[0]], e[1])
		adjacency[e[1]] = append(adjacency[e[1]], e[0])
	}
	return New(m, adjacency)
}

// traverse runs an iterative DFS from vertex 0, recording pre-order, parents
// and edge positions. It detects cycles, asymmetric adjacency and
// unreachable vertices.
func (t *Tree[M]) traverse() error {
	n := len(t.adj)
	if n == 0 {
		return nil
	}
	visited := make([]bool, n)
	t.order = make([]int, 0, n)
	t.parent[0], t.up[0], t.down[0] = -1, -1, -1
	visited[0] = true
	stack := arraystack.New()
	stack.Push(0)
	for !stack.Empty() {
		top, _ := stack.Pop()
		v := top.(int)
		t.order = append(t.order, v)
		for i, u := range t.adj[v] {
			if i == t.up[v] {
				continue
			}
			if visited[u] {
				return t.invalid("cycle closed by edge %d-%d", v, u)
			}
			back := indexOf(t.adj[u], v)
			if back < 0 {
				return t.invalid("edge %d-%d is not listed for vertex %d", v, u, u)
			}
			visited[u] = true
			t.parent[u], t.up[u], t.down[u] = v, back, i
			stack.Push(u)
		}
	}
	if len(t.order) != n {
		return t.invalid("%d of %d vertices are not reachable from vertex 0", n-len(t.order), n)
	}
	return nil
}

func (t *Tree[M]) invalid(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{monoidal.ErrInvalidTree}, args...)...)
	tracer().Errorf("reroot: %s", err.Error())
	return err
}

func indexOf(list []int, x int) int {
	for i, y := range list {
		if y == x {
			return i
		}
	}
	return -1
}

// Len returns the number of vertices of the tree.
func (t *Tree[M]) Len() int {
	return len(t.adj)
}

// Parent returns the parent of vertex v, with the tree rooted at vertex 0.
// The root has parent -1.
func (t *Tree[M]) Parent(v int) (int, error) {
	if v < 0 || v >= len(t.adj) {
		return -1, fmt.Errorf("%w: vertex %d in tree of %d vertices", monoidal.ErrIndexOutOfBounds, v, len(t.adj))
	}
	return t.parent[v], nil
}
