package refine

import (
	"sort"

	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/symbols"
)

// MappingSet is an immutable, sorted set of correspondences.
type MappingSet struct {
	pairs []Mapping
	index map[Mapping]struct{}
}

func newMappingSet(set map[Mapping]struct{}) MappingSet {
	pairs := make([]Mapping, 0, len(set))
	for m := range set {
		pairs = append(pairs, m)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].In != pairs[j].In {
			return pairs[i].In < pairs[j].In
		}

		return pairs[i].Out < pairs[j].Out
	})

	return MappingSet{pairs: pairs, index: set}
}

// NewMappingSet builds a set from explicit pairs; duplicates collapse.
func NewMappingSet(pairs ...Mapping) MappingSet {
	set := make(map[Mapping]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}

	return newMappingSet(set)
}

// Has reports whether in -> out is in the set.
func (s MappingSet) Has(in, out symbols.ID) bool {
	_, ok := s.index[Mapping{In: in, Out: out}]

	return ok
}

// Len returns the number of mappings.
func (s MappingSet) Len() int { return len(s.pairs) }

// Pairs returns the mappings ordered by (In, Out). The slice is a copy.
func (s MappingSet) Pairs() []Mapping {
	return append([]Mapping(nil), s.pairs...)
}

// ForInput returns the outputs mapped from in, ascending.
func (s MappingSet) ForInput(in symbols.ID) []symbols.ID {
	var out []symbols.ID
	for _, p := range s.pairs {
		if p.In == in {
			out = append(out, p.Out)
		}
	}

	return out
}

// ForOutput returns the inputs mapped to out, ascending.
func (s MappingSet) ForOutput(out symbols.ID) []symbols.ID {
	var in []symbols.ID
	for _, p := range s.pairs {
		if p.Out == out {
			in = append(in, p.In)
		}
	}

	return in
}

// Model builds the refined zero-weight model: one arc per mapping.
func (s MappingSet) Model() *model.Model {
	arcs := make([]model.Arc, len(s.pairs))
	for i, p := range s.pairs {
		arcs[i] = model.Arc{In: p.In, Out: p.Out}
	}

	return model.FromMappings(arcs)
}
