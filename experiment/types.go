package experiment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/soundlaw/learner"
)

// Sentinel errors for experiments.
var (
	ErrNilRoots      = errors.New("experiment: root list is nil")
	ErrUnknownMethod = errors.New("experiment: unknown method")
	ErrBadConfig     = errors.New("experiment: invalid config")
)

// Method selects how a drawn pair is judged.
type Method int

const (
	// MethodLevenshtein compares token edit distance to a threshold.
	MethodLevenshtein Method = iota

	// MethodAligner runs the learner and counts matches.
	MethodAligner
)

// String returns "levenshtein" or "aligner".
func (m Method) String() string {
	switch m {
	case MethodLevenshtein:
		return "levenshtein"
	case MethodAligner:
		return "aligner"
	default:
		return "unknown"
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "levenshtein":
		return MethodLevenshtein, nil
	case "aligner":
		return MethodAligner, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Config controls a batch of experiments.
type Config struct {
	Experiments          int
	Etyma                int
	MaxHomophones        int
	Method               Method
	LevenshteinThreshold float64
	Seed                 uint64

	// Learner configures MethodAligner runs.
	Learner learner.Config

	// PrintMappings emits each aligner run's mapping report.
	PrintMappings bool

	// Parallel bounds concurrently running experiments; 0 means 1.
	Parallel int
}

// DefaultConfig mirrors the command-line defaults.
func DefaultConfig() Config {
	return Config{
		Experiments:          1000,
		Etyma:                1000,
		MaxHomophones:        5,
		Method:               MethodLevenshtein,
		LevenshteinThreshold: 3,
		Learner:              learner.DefaultConfig(),
		Parallel:             1,
	}
}

// Validate checks ranges.
func (c Config) Validate() error {
	switch {
	case c.Experiments < 0:
		return fmt.Errorf("%w: experiments %d < 0", ErrBadConfig, c.Experiments)
	case c.Etyma < 0:
		return fmt.Errorf("%w: etyma %d < 0", ErrBadConfig, c.Etyma)
	case c.MaxHomophones < 1:
		return fmt.Errorf("%w: max homophones %d < 1", ErrBadConfig, c.MaxHomophones)
	case c.LevenshteinThreshold < 0:
		return fmt.Errorf("%w: levenshtein threshold %v < 0", ErrBadConfig, c.LevenshteinThreshold)
	case c.Parallel < 0:
		return fmt.Errorf("%w: parallel %d < 0", ErrBadConfig, c.Parallel)
	case c.Method != MethodLevenshtein && c.Method != MethodAligner:
		return ErrUnknownMethod
	}

	return nil
}

// Outcome is the result of one experiment.
type Outcome struct {
	Run       int
	Pairs     int
	Successes int
}
