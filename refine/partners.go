package refine

import (
	"sort"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/symbols"
)

// table maps a row symbol to its partners' tallies.
type table map[symbols.ID]map[symbols.ID]*tally

func (t table) add(row, col symbols.ID, at stamp, n int) {
	r, ok := t[row]
	if !ok {
		r = make(map[symbols.ID]*tally)
		t[row] = r
	}
	if e, ok := r[col]; ok {
		e.count += n
		if at.before(e.first) {
			e.first = at
		}

		return
	}
	r[col] = &tally{count: n, first: at}
}

// top returns up to k columns of row, by descending count then first stamp.
func (t table) top(row symbols.ID, k int) []symbols.ID {
	r := t[row]
	cols := make([]symbols.ID, 0, len(r))
	for c := range r {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		a, b := r[cols[i]], r[cols[j]]
		if a.count != b.count {
			return a.count > b.count
		}

		return a.first.before(b.first)
	})
	if len(cols) > k {
		cols = cols[:k]
	}

	return cols
}

// Partners collects partner frequencies from first-pass alignments.
// A Partners is not safe for concurrent use; give each worker its own and
// Merge them afterwards.
type Partners struct {
	initialOnly bool
	forward     table // in -> out
	backward    table // out -> in
}

// NewPartners returns empty tables. With initialOnly set only the forward
// direction is tracked.
func NewPartners(initialOnly bool) *Partners {
	p := &Partners{initialOnly: initialOnly, forward: make(table)}
	if !initialOnly {
		p.backward = make(table)
	}

	return p
}

// Observe counts every cell of a, stamped with pair index seq.
func (p *Partners) Observe(seq int, a align.Alignment) {
	for i, c := range a.Cells {
		at := stamp{seq: seq, cell: i}
		p.forward.add(c.In, c.Out, at, 1)
		if !p.initialOnly {
			p.backward.add(c.Out, c.In, at, 1)
		}
	}
}

// Merge folds other into p. other is left unchanged.
func (p *Partners) Merge(other *Partners) {
	if other == nil {
		return
	}
	merge(p.forward, other.forward)
	if !p.initialOnly {
		merge(p.backward, other.backward)
	}
}

func merge(dst, src table) {
	for row, cols := range src {
		for col, e := range cols {
			dst.add(row, col, e.first, e.count)
		}
	}
}

// Count returns how often in was aligned to out.
func (p *Partners) Count(in, out symbols.ID) int {
	if e, ok := p.forward[in][out]; ok {
		return e.count
	}

	return 0
}

// Select keeps the k most frequent partners of every symbol in both
// directions and returns their union.
func (p *Partners) Select(k int) (MappingSet, error) {
	if k < 1 {
		return MappingSet{}, ErrBadLimit
	}

	set := make(map[Mapping]struct{})
	for in := range p.forward {
		for _, out := range p.forward.top(in, k) {
			set[Mapping{In: in, Out: out}] = struct{}{}
		}
	}
	if !p.initialOnly {
		for out := range p.backward {
			for _, in := range p.backward.top(out, k) {
				set[Mapping{In: in, Out: out}] = struct{}{}
			}
		}
	}

	return newMappingSet(set), nil
}
