package cooccur

import (
	"sort"

	"github.com/katalvlaran/soundlaw/symbols"
)

// Stats holds co-occurrence counts and their grand total.
// It is built once by Estimate and read-only afterwards, so concurrent
// readers need no locking.
type Stats struct {
	counts map[Key]int
	total  int
}

// Estimate counts co-occurrences over pairs.
//
// Steps:
//  1. Apply options; truncate sequences to their first symbol if InitialOnly.
//  2. Forward pass over every pair.
//  3. Reverse pass unless InitialOnly.
//  4. Reject a zero total with ErrNoCoverage.
//
// The input slices are never modified.
func Estimate(pairs []Pair, opts ...Option) (*Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	st := &Stats{counts: make(map[Key]int)}
	for _, p := range pairs {
		a, b := p.A, p.B
		if cfg.InitialOnly {
			a, b = initial(a), initial(b)
		}
		st.forward(a, b)
		if !cfg.InitialOnly {
			st.reverse(a, b)
		}
	}

	if st.total == 0 {
		return nil, ErrNoCoverage
	}

	return st, nil
}

// forward counts (a[i], b[j]) for j ≥ i.
func (s *Stats) forward(a, b []symbols.ID) {
	for i := range a {
		for j := i; j < len(b); j++ {
			s.counts[Key{A: a[i], B: b[j]}]++
			s.total++
		}
	}
}

// reverse counts (a[j], b[i]) for j ≥ i.
func (s *Stats) reverse(a, b []symbols.ID) {
	for i := range b {
		for j := i; j < len(a); j++ {
			s.counts[Key{A: a[j], B: b[i]}]++
			s.total++
		}
	}
}

// initial returns the first symbol of seq as a sub-slice (empty stays empty).
func initial(seq []symbols.ID) []symbols.ID {
	if len(seq) > 1 {
		return seq[:1]
	}

	return seq
}

// Count returns count(a, b); unseen keys count as zero.
func (s *Stats) Count(a, b symbols.ID) int { return s.counts[Key{A: a, B: b}] }

// Total returns the number of increments performed by Estimate.
func (s *Stats) Total() int { return s.total }

// Len returns the number of distinct keys.
func (s *Stats) Len() int { return len(s.counts) }

// Sum recomputes Σ count(a, b). It always equals Total; it exists so callers
// and tests can check the invariant independently.
func (s *Stats) Sum() int {
	sum := 0
	for _, c := range s.counts {
		sum += c
	}

	return sum
}

// Keys returns every counted key ordered by (A, B) ascending.
func (s *Stats) Keys() []Key {
	keys := make([]Key, 0, len(s.counts))
	for k := range s.counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})

	return keys
}
