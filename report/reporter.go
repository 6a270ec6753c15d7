package report

import (
	"strings"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/symbols"
)

// counter is a count table that remembers first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter { return &counter{counts: make(map[string]int)} }

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// groups counts distinct keys seen more than once.
func (c *counter) groups() int {
	n := 0
	for _, k := range c.order {
		if c.counts[k] > 1 {
			n++
		}
	}

	return n
}

// Reporter accumulates matches and homophone tables. Observe must be called
// in pair order for first-seen ordering to be meaningful; it is not safe for
// concurrent use.
type Reporter struct {
	cat       *symbols.Catalog
	maxZeroes int

	aligned int
	matched int
	inputs  *counter
	outputs *counter
	lines   *counter
}

// NewReporter returns a Reporter rendering through cat.
func NewReporter(cat *symbols.Catalog, maxZeroes int) (*Reporter, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	return &Reporter{
		cat:       cat,
		maxZeroes: maxZeroes,
		inputs:    newCounter(),
		outputs:   newCounter(),
		lines:     newCounter(),
	}, nil
}

// Observe renders a, updates the tables and returns the decision.
func (r *Reporter) Observe(index int, a align.Alignment) Match {
	inp := make([]string, len(a.Cells))
	out := make([]string, len(a.Cells))
	m := Match{Index: index}
	for i, c := range a.Cells {
		if c.In.IsGap() {
			inp[i] = GapMark
			m.Insertions++
		} else {
			inp[i] = r.cat.Token(c.In)
		}
		if c.Out.IsGap() {
			out[i] = GapMark
			m.Deletions++
		} else {
			out[i] = r.cat.Token(c.Out)
		}
	}
	m.Input = strings.Join(inp, " ")
	m.Output = strings.Join(out, " ")

	r.aligned++
	r.inputs.add(m.Input)
	r.outputs.add(m.Output)
	if m.Edits() <= r.maxZeroes {
		m.Matched = true
		r.matched++
		r.lines.add(m.Line())
	}

	return m
}

// Matches returns the number of matched pairs so far.
func (r *Reporter) Matches() int { return r.matched }

// Summary snapshots the tables.
func (r *Reporter) Summary() Summary {
	s := Summary{
		Aligned:      r.aligned,
		Matches:      r.matched,
		InputGroups:  r.inputs.groups(),
		OutputGroups: r.outputs.groups(),
	}
	for _, line := range r.lines.order {
		if n := r.lines.counts[line]; n > 1 {
			s.Homophones = append(s.Homophones, Homophone{Count: n, Line: line})
		}
	}

	return s
}
