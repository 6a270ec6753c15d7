package align

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/symbols"
)

// Sentinel errors for alignment.
var (
	// ErrNilModel indicates New was called with a nil model.
	ErrNilModel = errors.New("align: model is nil")

	// ErrNoAlignment indicates the composition has no complete path.
	ErrNoAlignment = errors.New("align: no alignment path")

	// ErrUnknownMethod indicates an unsupported Method.
	ErrUnknownMethod = errors.New("align: unknown method")
)

// Method selects the alignment engine.
type Method int

const (
	// MethodDP is the edit-distance dynamic program.
	MethodDP Method = iota

	// MethodLattice is explicit composition + Dijkstra + topological sort.
	MethodLattice
)

// String returns "dp" or "lattice".
func (m Method) String() string {
	switch m {
	case MethodDP:
		return "dp"
	case MethodLattice:
		return "lattice"
	default:
		return "unknown"
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "dp":
		return MethodDP, nil
	case "lattice":
		return MethodLattice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Cell is one aligned position.
type Cell struct {
	In  symbols.ID
	Out symbols.ID
}

// Kind classifies c as substitution, deletion or insertion.
func (c Cell) Kind() model.Kind { return model.KindOf(c.In, c.Out) }

// Alignment is an ordered, left-to-right list of cells and its total cost.
type Alignment struct {
	Cells []Cell
	Cost  float64
}

// Len returns the number of cells.
func (a Alignment) Len() int { return len(a.Cells) }

// Insertions counts (ε, y) cells.
func (a Alignment) Insertions() int { return a.count(model.Insertion) }

// Deletions counts (x, ε) cells.
func (a Alignment) Deletions() int { return a.count(model.Deletion) }

// Edits returns insertions + deletions.
func (a Alignment) Edits() int {
	n := 0
	for _, c := range a.Cells {
		if c.In.IsGap() || c.Out.IsGap() {
			n++
		}
	}

	return n
}

// Input returns the input side, gaps included.
func (a Alignment) Input() []symbols.ID {
	out := make([]symbols.ID, len(a.Cells))
	for i, c := range a.Cells {
		out[i] = c.In
	}

	return out
}

// Output returns the output side, gaps included.
func (a Alignment) Output() []symbols.ID {
	out := make([]symbols.ID, len(a.Cells))
	for i, c := range a.Cells {
		out[i] = c.Out
	}

	return out
}

func (a Alignment) count(k model.Kind) int {
	n := 0
	for _, c := range a.Cells {
		if c.Kind() == k {
			n++
		}
	}

	return n
}

// Options configures an Engine.
type Options struct {
	Method Method
}

// Option is a functional option for New.
type Option func(*Options)

// WithMethod selects the alignment engine.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns MethodDP.
func DefaultOptions() Options {
	return Options{Method: MethodDP}
}
