package lattice

import (
	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/symbols"
)

// Composition is the lattice of a ∘ M ∘ b together with its start and final
// states.
type Composition struct {
	*Graph
	Start int
	Final int
	cols  int // len(b)+1
}

// State returns the state index of (i, j).
func (c *Composition) State(i, j int) int { return i*c.cols + j }

// Coords is the inverse of State.
func (c *Composition) Coords(v int) (i, j int) { return v / c.cols, v % c.cols }

// Compose builds the composition lattice of a, m and b.
//
// Arcs are added per state in the order substitution, deletion, insertion,
// which is also the relaxation order ShortestPath uses for tie-breaking.
// Labels absent from m produce no arc.
//
// Complexity: O(n·m) time and memory.
func Compose(a, b []symbols.ID, m *model.Model) (*Composition, error) {
	n, k := len(a), len(b)
	c := &Composition{
		Graph: NewGraph((n + 1) * (k + 1)),
		cols:  k + 1,
	}
	c.Start, c.Final = 0, c.State(n, k)
	if m.Empty() {
		return c, nil
	}

	for i := 0; i <= n; i++ {
		for j := 0; j <= k; j++ {
			from := c.State(i, j)
			if i < n && j < k {
				if w, ok := m.Weight(a[i], b[j]); ok {
					if _, err := c.AddEdge(Edge{From: from, To: c.State(i+1, j+1), In: a[i], Out: b[j], Weight: w}); err != nil {
						return nil, err
					}
				}
			}
			if i < n {
				if w, ok := m.Weight(a[i], symbols.Gap); ok {
					if _, err := c.AddEdge(Edge{From: from, To: c.State(i+1, j), In: a[i], Out: symbols.Gap, Weight: w}); err != nil {
						return nil, err
					}
				}
			}
			if j < k {
				if w, ok := m.Weight(symbols.Gap, b[j]); ok {
					if _, err := c.AddEdge(Edge{From: from, To: c.State(i, j+1), In: symbols.Gap, Out: b[j], Weight: w}); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return c, nil
}
