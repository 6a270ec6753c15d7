package lattice

import "fmt"

// Graph is a directed, weighted multigraph over dense integer states.
//
// Unlike a general-purpose graph it never removes anything and states are
// fixed at construction, so storage is two slices: the edge catalog and the
// per-state list of outgoing edge IDs in insertion order. Neighbors therefore
// returns arcs in a deterministic order without sorting.
//
// Graph is not safe for concurrent mutation; a finished Graph may be read
// concurrently.
type Graph struct {
	edges []Edge
	out   [][]int // out[v] = IDs of edges leaving v, insertion order
}

// NewGraph creates a graph with states 0..vertices-1 and no edges.
// Complexity: O(V).
func NewGraph(vertices int) *Graph {
	if vertices < 0 {
		vertices = 0
	}

	return &Graph{out: make([][]int, vertices)}
}

// AddEdge appends a directed arc and returns its ID.
//
// Steps:
//  1. Validate both endpoints (ErrVertexNotFound).
//  2. Reject negative weights (ErrNegativeWeight).
//  3. Append to the edge catalog and to out[from].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) (int, error) {
	if !g.has(e.From) || !g.has(e.To) {
		return 0, fmt.Errorf("%w: %d→%d", ErrVertexNotFound, e.From, e.To)
	}
	if e.Weight < 0 {
		return 0, fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}
	e.ID = len(g.edges)
	g.edges = append(g.edges, e)
	g.out[e.From] = append(g.out[e.From], e.ID)

	return e.ID, nil
}

// Neighbors returns the edges leaving v in insertion order.
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.has(v) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}
	res := make([]Edge, len(g.out[v]))
	for i, id := range g.out[v] {
		res[i] = g.edges[id]
	}

	return res, nil
}

// Edge returns the edge with the given ID.
func (g *Graph) Edge(id int) (Edge, bool) {
	if id < 0 || id >= len(g.edges) {
		return Edge{}, false
	}

	return g.edges[id], true
}

// VertexCount returns the number of states.
func (g *Graph) VertexCount() int { return len(g.out) }

// EdgeCount returns the number of arcs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// has reports whether v is a valid state index.
func (g *Graph) has(v int) bool { return v >= 0 && v < len(g.out) }
