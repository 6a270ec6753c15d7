package model

import (
	"errors"

	"github.com/katalvlaran/soundlaw/symbols"
)

// Sentinel errors for model construction.
var (
	// ErrNilStats indicates Build was called without statistics.
	ErrNilStats = errors.New("model: statistics are nil")

	// ErrNoCoverage indicates the statistics total is zero, so −ln(c/total)
	// is undefined.
	ErrNoCoverage = errors.New("model: statistics total is zero")

	// ErrNegativePenalty indicates a negative insertion or deletion penalty.
	ErrNegativePenalty = errors.New("model: gap penalties must be non-negative")
)

// DefaultGapPenalty is the insertion and deletion weight used by Build.
const DefaultGapPenalty = 100.0

// Arc is one in:out correspondence with its weight.
type Arc struct {
	In     symbols.ID
	Out    symbols.ID
	Weight float64
}

// Kind classifies an arc or alignment cell.
type Kind int

const (
	// Substitution maps a symbol to a symbol (possibly itself).
	Substitution Kind = iota
	// Deletion maps an input symbol to the gap.
	Deletion
	// Insertion maps the gap to an output symbol.
	Insertion
)

// String returns a lower-case name for k.
func (k Kind) String() string {
	switch k {
	case Deletion:
		return "deletion"
	case Insertion:
		return "insertion"
	default:
		return "substitution"
	}
}

// KindOf classifies the pair (in, out).
func KindOf(in, out symbols.ID) Kind {
	switch {
	case out.IsGap():
		return Deletion
	case in.IsGap():
		return Insertion
	default:
		return Substitution
	}
}

// Options configures Build.
type Options struct {
	InsertionPenalty float64
	DeletionPenalty  float64
}

// Option is a functional option for Build.
type Option func(*Options)

// WithInsertionPenalty sets the weight of ε:b arcs.
func WithInsertionPenalty(w float64) Option {
	return func(o *Options) { o.InsertionPenalty = w }
}

// WithDeletionPenalty sets the weight of a:ε arcs.
func WithDeletionPenalty(w float64) Option {
	return func(o *Options) { o.DeletionPenalty = w }
}

// DefaultOptions returns DefaultGapPenalty for both gap kinds.
func DefaultOptions() Options {
	return Options{
		InsertionPenalty: DefaultGapPenalty,
		DeletionPenalty:  DefaultGapPenalty,
	}
}
