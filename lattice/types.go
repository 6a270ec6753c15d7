package lattice

import (
	"errors"

	"github.com/katalvlaran/soundlaw/symbols"
)

// Sentinel errors for lattice operations.
var (
	// ErrVertexNotFound indicates a state index outside [0, VertexCount).
	ErrVertexNotFound = errors.New("lattice: vertex not found")

	// ErrNegativeWeight indicates an arc with a negative weight.
	ErrNegativeWeight = errors.New("lattice: negative edge weight")

	// ErrNoPath indicates the target state cannot be reached from the source.
	ErrNoPath = errors.New("lattice: no path to final state")

	// ErrCycleDetected indicates a directed cycle during topological sorting.
	ErrCycleDetected = errors.New("lattice: cycle detected")

	// ErrNilGraph indicates a nil *Graph argument.
	ErrNilGraph = errors.New("lattice: graph is nil")
)

// Visitation states for depth-first traversal.
const (
	white = iota // not visited
	gray         // on the recursion stack
	black        // fully explored
)

// Edge is one labelled arc of the lattice.
type Edge struct {
	// ID is the insertion index of the edge within its Graph.
	ID int

	// From and To are state indices.
	From int
	To   int

	// In and Out are the arc labels; symbols.Gap stands for ε.
	In  symbols.ID
	Out symbols.ID

	// Weight is the non-negative arc cost.
	Weight float64
}

// Path is a source-to-target sequence of edges with its total weight.
type Path struct {
	Edges  []Edge
	Weight float64
}
