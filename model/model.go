package model

import (
	"math"
	"sort"

	"github.com/katalvlaran/soundlaw/cooccur"
	"github.com/katalvlaran/soundlaw/symbols"
)

// key addresses one arc of the flat model.
type key struct {
	in, out symbols.ID
}

// Model is an immutable single-state weighted correspondence model.
// Safe for concurrent readers.
type Model struct {
	arcs    map[key]float64
	inputs  map[symbols.ID]struct{} // symbols with at least one outgoing in-label
	outputs map[symbols.ID]struct{} // symbols with at least one out-label
}

// newModel allocates an empty model.
func newModel(hint int) *Model {
	return &Model{
		arcs:    make(map[key]float64, hint),
		inputs:  make(map[symbols.ID]struct{}),
		outputs: make(map[symbols.ID]struct{}),
	}
}

// add inserts an arc, keeping the lower weight when (in, out) already exists.
// Collapsing parallel arcs this way is the only structural optimization the
// single-state model needs; the surviving weight is exact.
func (m *Model) add(in, out symbols.ID, w float64) {
	k := key{in: in, out: out}
	if old, ok := m.arcs[k]; ok && old <= w {
		return
	}
	m.arcs[k] = w
	if !in.IsGap() {
		m.inputs[in] = struct{}{}
	}
	if !out.IsGap() {
		m.outputs[out] = struct{}{}
	}
}

// Build converts co-occurrence statistics into a correspondence model.
//
// Preconditions and validation (in order):
//  1. st must be non-nil (ErrNilStats).
//  2. st.Total() must be positive (ErrNoCoverage).
//  3. Both penalties must be ≥ 0 (ErrNegativePenalty).
//
// For every counted key (a, b): substitution a:b at −ln(c/total), deletion
// a:ε and insertion ε:b at the fixed penalties.
// Complexity: O(K) for K distinct keys.
func Build(st *cooccur.Stats, opts ...Option) (*Model, error) {
	if st == nil {
		return nil, ErrNilStats
	}
	if st.Total() <= 0 {
		return nil, ErrNoCoverage
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.InsertionPenalty < 0 || cfg.DeletionPenalty < 0 {
		return nil, ErrNegativePenalty
	}

	total := float64(st.Total())
	m := newModel(3 * st.Len())
	for _, k := range st.Keys() {
		c := float64(st.Count(k.A, k.B))
		m.add(k.A, k.B, -math.Log(c/total))
		m.add(k.A, symbols.Gap, cfg.DeletionPenalty)
		m.add(symbols.Gap, k.B, cfg.InsertionPenalty)
	}

	return m, nil
}

// FromMappings builds a model whose only arcs are zero-weight arcs for the
// given (in, out) pairs. Weight fields of arcs are ignored.
func FromMappings(arcs []Arc) *Model {
	m := newModel(len(arcs))
	for _, a := range arcs {
		m.add(a.In, a.Out, 0)
	}

	return m
}

// Weight returns the weight of arc in:out, or false if the model has none.
func (m *Model) Weight(in, out symbols.ID) (float64, bool) {
	w, ok := m.arcs[key{in: in, out: out}]

	return w, ok
}

// Cost is Weight with a missing arc reported as +Inf.
func (m *Model) Cost(in, out symbols.ID) float64 {
	if w, ok := m.arcs[key{in: in, out: out}]; ok {
		return w
	}

	return math.Inf(1)
}

// Len returns the number of arcs.
func (m *Model) Len() int { return len(m.arcs) }

// Empty reports whether the model has no arcs and therefore no coverage.
func (m *Model) Empty() bool { return m == nil || len(m.arcs) == 0 }

// Accepts reports whether some arc consumes input symbol id.
func (m *Model) Accepts(id symbols.ID) bool {
	_, ok := m.inputs[id]

	return ok
}

// Emits reports whether some arc produces output symbol id.
func (m *Model) Emits(id symbols.ID) bool {
	_, ok := m.outputs[id]

	return ok
}

// Arcs returns all arcs ordered by (In, Out) ascending.
func (m *Model) Arcs() []Arc {
	out := make([]Arc, 0, len(m.arcs))
	for k, w := range m.arcs {
		out = append(out, Arc{In: k.in, Out: k.out, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].In != out[j].In {
			return out[i].In < out[j].In
		}
		return out[i].Out < out[j].Out
	})

	return out
}
