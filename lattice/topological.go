package lattice

import (
	"context"
	"fmt"
)

// TopologicalSort returns an ordering of all states such that every arc
// u→v has u before v. Roots are visited in ascending state order, so the
// result is deterministic.
//
// The context is checked on entry to every state; cancellation returns
// ctx.Err().
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(ctx context.Context, g *Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}
	t := &topoSorter{
		ctx:   ctx,
		graph: g,
		state: make([]int, g.VertexCount()),
		order: make([]int, 0, g.VertexCount()),
	}
	for v := 0; v < g.VertexCount(); v++ {
		if t.state[v] == white {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// topoSorter holds DFS state for one TopologicalSort call.
type topoSorter struct {
	ctx   context.Context
	graph *Graph
	state []int
	order []int
}

// visit explores v depth-first and appends it in post-order.
func (t *topoSorter) visit(v int) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[v] {
	case gray:
		return fmt.Errorf("%w: at state %d", ErrCycleDetected, v)
	case black:
		return nil
	}
	t.state[v] = gray
	for _, id := range t.graph.out[v] {
		if err := t.visit(t.graph.edges[id].To); err != nil {
			return err
		}
	}
	t.state[v] = black
	t.order = append(t.order, v)

	return nil
}

// Linearize orders the edges of p left to right by topologically sorting the
// subgraph they span. For a simple path this reproduces the path order; it
// is written against the subgraph so it stays correct for any acyclic edge
// set whose states have at most one outgoing path edge.
func Linearize(ctx context.Context, p Path) ([]Edge, error) {
	if len(p.Edges) == 0 {
		return nil, nil
	}

	// Re-index the states touched by the path densely.
	index := make(map[int]int, len(p.Edges)+1)
	local := func(v int) int {
		if i, ok := index[v]; ok {
			return i
		}
		i := len(index)
		index[v] = i
		return i
	}
	type arc struct{ from, to int }
	arcs := make([]arc, len(p.Edges))
	for i, e := range p.Edges {
		arcs[i] = arc{from: local(e.From), to: local(e.To)}
	}

	sub := NewGraph(len(index))
	for i, a := range arcs {
		if _, err := sub.AddEdge(Edge{From: a.from, To: a.to, In: p.Edges[i].In, Out: p.Edges[i].Out, Weight: p.Edges[i].Weight}); err != nil {
			return nil, err
		}
	}
	order, err := TopologicalSort(ctx, sub)
	if err != nil {
		return nil, err
	}

	out := make([]Edge, 0, len(p.Edges))
	for _, v := range order {
		for _, id := range sub.out[v] {
			out = append(out, p.Edges[id])
		}
	}

	return out, nil
}
