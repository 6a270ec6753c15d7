package align

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/soundlaw/lattice"
	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/symbols"
)

// Engine aligns sequence pairs against one frozen model.
// An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	m    *model.Model
	opts Options
}

// New returns an Engine for m.
func New(m *model.Model, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Method != MethodDP && cfg.Method != MethodLattice {
		return nil, ErrUnknownMethod
	}

	return &Engine{m: m, opts: cfg}, nil
}

// Model returns the model the engine scores against.
func (e *Engine) Model() *model.Model { return e.m }

// Method returns the configured engine kind.
func (e *Engine) Method() Method { return e.opts.Method }

// Align returns the minimum-cost alignment of a against b.
//
// An empty model has no coverage at all: Align returns ErrNoAlignment even
// for two empty sequences, so callers never mistake "no model" for a
// zero-cost match.
func (e *Engine) Align(a, b []symbols.ID) (Alignment, error) {
	if e.m.Empty() {
		return Alignment{}, ErrNoAlignment
	}
	if e.opts.Method == MethodLattice {
		return e.alignLattice(a, b)
	}

	return e.alignDP(a, b)
}

// move records which predecessor produced a DP cell.
type move uint8

const (
	moveNone move = iota
	moveSub
	moveDel
	moveIns
)

// alignDP fills the (n+1)×(m+1) cost matrix and backtracks.
//
// Algorithm Outline:
//  1. D[0][0] = 0; first column accumulates deletions, first row insertions.
//  2. For i = 1..n, j = 1..m: D[i][j] = min over substitution, deletion,
//     insertion, in that order, replacing only on strict improvement.
//  3. D[n][m] = +Inf means no path.
//  4. Follow stored moves from (n,m) back to (0,0), then reverse.
func (e *Engine) alignDP(a, b []symbols.ID) (Alignment, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	// 1) Allocate the cost matrix and the move matrix.
	dp := make([][]float64, n+1)
	mv := make([][]move, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		mv[i] = make([]move, m+1)
	}

	// 2) First column: deletions only. First row: insertions only.
	// A missing gap arc makes the rest of the row or column +Inf.
	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + e.m.Cost(a[i-1], symbols.Gap)
		mv[i][0] = moveDel
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + e.m.Cost(symbols.Gap, b[j-1])
		mv[0][j] = moveIns
	}

	// 3) Fill. Candidates are tried as sub, del, ins; strict < keeps the
	// earlier one on a tie.
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best, how := inf, moveNone
			if c := dp[i-1][j-1] + e.m.Cost(a[i-1], b[j-1]); c < best {
				best, how = c, moveSub
			}
			if c := dp[i-1][j] + e.m.Cost(a[i-1], symbols.Gap); c < best {
				best, how = c, moveDel
			}
			if c := dp[i][j-1] + e.m.Cost(symbols.Gap, b[j-1]); c < best {
				best, how = c, moveIns
			}
			dp[i][j], mv[i][j] = best, how
		}
	}

	// 4) An unreachable corner means some symbol has no usable arc.
	if math.IsInf(dp[n][m], 1) {
		return Alignment{}, ErrNoAlignment
	}

	// 5) Backtrack from (n,m) to (0,0), collecting cells right to left.
	cells := make([]Cell, 0, n+m)
	for i, j := n, m; i > 0 || j > 0; {
		switch mv[i][j] {
		case moveSub:
			cells = append(cells, Cell{In: a[i-1], Out: b[j-1]})
			i, j = i-1, j-1
		case moveDel:
			cells = append(cells, Cell{In: a[i-1], Out: symbols.Gap})
			i--
		case moveIns:
			cells = append(cells, Cell{In: symbols.Gap, Out: b[j-1]})
			j--
		default:
			// unreachable: a finite D[n][m] implies a complete move chain
			return Alignment{}, ErrNoAlignment
		}
	}
	// 6) Reverse in place to left-to-right order.
	for l, r := 0, len(cells)-1; l < r; l, r = l+1, r-1 {
		cells[l], cells[r] = cells[r], cells[l]
	}

	return Alignment{Cells: cells, Cost: dp[n][m]}, nil
}

// alignLattice composes, searches and linearizes.
func (e *Engine) alignLattice(a, b []symbols.ID) (Alignment, error) {
	// 1) Build the (i,j) lattice of a ∘ M ∘ b.
	comp, err := lattice.Compose(a, b, e.m)
	if err != nil {
		return Alignment{}, err
	}
	// 2) Cheapest start→final path; no path means no alignment.
	path, err := lattice.ShortestPath(comp.Graph, comp.Start, comp.Final)
	if errors.Is(err, lattice.ErrNoPath) {
		return Alignment{}, ErrNoAlignment
	}
	if err != nil {
		return Alignment{}, err
	}
	// 3) Order the path's arcs left to right.
	edges, err := lattice.Linearize(context.Background(), path)
	if err != nil {
		return Alignment{}, err
	}

	// 4) Arc labels become cells.
	cells := make([]Cell, len(edges))
	for i, ed := range edges {
		cells[i] = Cell{In: ed.In, Out: ed.Out}
	}

	return Alignment{Cells: cells, Cost: path.Weight}, nil
}
