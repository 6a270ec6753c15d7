package lattice

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath runs Dijkstra from source to target and returns the
// minimum-weight path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be valid states (ErrVertexNotFound).
//
// Tie-breaking is deterministic: the heap orders entries by (distance,
// state), arcs are relaxed in insertion order, and a predecessor is replaced
// only on a strictly smaller distance.
//
// If source == target the empty path with weight 0 is returned.
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *Graph, source, target int) (Path, error) {
	// 1) Validate graph.
	if g == nil {
		return Path{}, ErrNilGraph
	}
	// 2) Validate endpoints.
	if !g.has(source) || !g.has(target) {
		return Path{}, fmt.Errorf("%w: source=%d target=%d", ErrVertexNotFound, source, target)
	}

	// 3) Run Dijkstra until target is finalized or the heap drains.
	r := newRunner(g, source)
	r.process(target)

	// 4) +Inf at target means it was never reached.
	if math.IsInf(r.dist[target], 1) {
		return Path{}, ErrNoPath
	}

	return r.path(target), nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *Graph
	dist    []float64 // best known distance per state
	prev    []int     // edge ID used to reach each state, -1 if none
	visited []bool    // distance finalized
	pq      statePQ
}

// newRunner initializes dist=+Inf everywhere except source=0.
func newRunner(g *Graph, source int) *runner {
	V := g.VertexCount()
	r := &runner{
		g:       g,
		dist:    make([]float64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(statePQ, 0, V),
	}
	// 1) dist = +Inf and no predecessor everywhere.
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
		r.prev[v] = -1
	}
	// 2) Source starts at zero and seeds the heap.
	r.dist[source] = 0
	heap.Push(&r.pq, stateItem{id: source, dist: 0})

	return r
}

// process pops states in distance order until the heap is empty or target
// is finalized.
func (r *runner) process(target int) {
	for r.pq.Len() > 0 {
		// 1) Pop the closest state; skip stale entries.
		item := heap.Pop(&r.pq).(stateItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		// 2) Its distance is final. Stop once the target is settled.
		r.visited[u] = true
		if u == target {
			return
		}
		// 3) Relax outgoing arcs.
		r.relax(u)
	}
}

// relax improves the distance of every successor of u reachable through a
// strictly cheaper path.
func (r *runner) relax(u int) {
	for _, id := range r.g.out[u] {
		e := r.g.edges[id]
		if r.visited[e.To] {
			continue
		}
		// equal distances keep the earlier predecessor
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = id
		heap.Push(&r.pq, stateItem{id: e.To, dist: nd})
	}
}

// path rebuilds the edge sequence ending at target from the predecessor table.
func (r *runner) path(target int) Path {
	var rev []Edge
	for v := target; r.prev[v] >= 0; {
		e := r.g.edges[r.prev[v]]
		rev = append(rev, e)
		v = e.From
	}
	for l, h := 0, len(rev)-1; l < h; l, h = l+1, h-1 {
		rev[l], rev[h] = rev[h], rev[l]
	}

	return Path{Edges: rev, Weight: r.dist[target]}
}

// stateItem is a heap entry: a state and the distance it was pushed with.
type stateItem struct {
	id   int
	dist float64
}

// statePQ is a min-heap ordered by (dist, id).
type statePQ []stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x any) { *pq = append(*pq, x.(stateItem)) }

func (pq *statePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
