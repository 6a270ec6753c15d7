package cooccur

import (
	"errors"

	"github.com/katalvlaran/soundlaw/symbols"
)

// ErrNoCoverage indicates that no co-occurrence was counted at all, so no
// log-probability weight can be derived from the statistics.
var ErrNoCoverage = errors.New("cooccur: no co-occurrence coverage (empty input)")

// Pair is one candidate cognate pair of interned sequences.
type Pair struct {
	A []symbols.ID
	B []symbols.ID
}

// Key identifies an (input symbol, output symbol) cell of the count table.
type Key struct {
	A symbols.ID
	B symbols.ID
}

// Options configures Estimate.
type Options struct {
	// InitialOnly restricts counting to the first symbol of each sequence and
	// disables the reverse pass.
	InitialOnly bool
}

// Option is a functional option for Estimate.
type Option func(*Options)

// WithInitialOnly enables initials-only counting.
func WithInitialOnly(on bool) Option {
	return func(o *Options) { o.InitialOnly = on }
}

// DefaultOptions returns the options Estimate uses when none are given:
// both passes over the full sequences.
func DefaultOptions() Options {
	return Options{InitialOnly: false}
}
