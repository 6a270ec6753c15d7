package learner

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/internal/observe"
)

// ErrBadConfig is returned for out-of-range Config values.
var ErrBadConfig = errors.New("learner: invalid config")

// Phase names used for spans, logs and the phase.duration metric.
const (
	PhaseEstimate = "estimate"
	PhasePass1    = "pass1"
	PhaseRefine   = "refine"
	PhasePass2    = "pass2"
)

// Config holds the pipeline parameters.
type Config struct {
	// MaxZeroes is the largest insertions+deletions count that still matches.
	MaxZeroes int

	// MaxAllowedMappings is k in top-k partner selection.
	MaxAllowedMappings int

	// InitialOnly restricts the run to the first symbol of each sequence.
	InitialOnly bool

	// Method selects the alignment engine.
	Method align.Method

	// Workers bounds alignment goroutines; 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns MaxZeroes 1, MaxAllowedMappings 2, MethodDP.
func DefaultConfig() Config {
	return Config{MaxZeroes: 1, MaxAllowedMappings: 2, Method: align.MethodDP}
}

// Options carries the run's collaborators.
type Options struct {
	Logger  *slog.Logger
	Metrics *observe.Metrics
}

// Option is a functional option for Run.
type Option func(*Options)

// WithLogger sets the logger; trace ids are attached per phase.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the instruments the run records into.
func WithMetrics(m *observe.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// DefaultOptions uses slog.Default. Run falls back to observe.DefaultMetrics
// when no Metrics are set.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

// Skipped counts pairs without an alignment path, per pass.
type Skipped struct {
	Pass1 int
	Pass2 int
}
