package refine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/refine"
	"github.com/katalvlaran/soundlaw/symbols"
)

// cells builds an alignment from "in:out" token pairs; "-" is the gap.
func cells(cat *symbols.Catalog, pairs ...string) align.Alignment {
	var a align.Alignment
	for _, p := range pairs {
		var in, out string
		for i := 0; i < len(p); i++ {
			if p[i] == ':' {
				in, out = p[:i], p[i+1:]
				break
			}
		}
		a.Cells = append(a.Cells, align.Cell{In: id(cat, in), Out: id(cat, out)})
	}
	return a
}

func id(cat *symbols.Catalog, tok string) symbols.ID {
	if tok == "-" {
		return symbols.Gap
	}
	return cat.Intern(tok)
}

func TestSelect_BadLimit(t *testing.T) {
	_, err := refine.NewPartners(false).Select(0)
	assert.ErrorIs(t, err, refine.ErrBadLimit)
}

// TestSelect_UnionOfDirections: the forward top-1 of k is s, the backward
// top-1 of t is k, so k ends up with two outputs.
func TestSelect_UnionOfDirections(t *testing.T) {
	cat := symbols.NewCatalog()
	p := refine.NewPartners(false)
	p.Observe(0, cells(cat, "k:s"))
	p.Observe(1, cells(cat, "k:s"))
	p.Observe(2, cells(cat, "k:t"))
	p.Observe(3, cells(cat, "p:t"))

	set, err := p.Select(1)
	require.NoError(t, err)

	k, s, tt, pp := cat.Intern("k"), cat.Intern("s"), cat.Intern("t"), cat.Intern("p")
	assert.Equal(t, []refine.Mapping{{In: k, Out: s}, {In: k, Out: tt}, {In: pp, Out: tt}}, set.Pairs())
}

// TestSelect_FirstObservationBreaksTies: s and o both occur twice with k;
// s was seen first, so k=1 keeps s.
func TestSelect_FirstObservationBreaksTies(t *testing.T) {
	cat := symbols.NewCatalog()
	p := refine.NewPartners(true)
	p.Observe(0, cells(cat, "k:s", "a:a"))
	p.Observe(1, cells(cat, "k:o"))
	p.Observe(2, cells(cat, "k:s"))
	p.Observe(3, cells(cat, "k:o"))
	p.Observe(4, cells(cat, "k:m"))

	k := cat.Intern("k")
	assert.Equal(t, 2, p.Count(k, cat.Intern("s")))
	assert.Equal(t, 2, p.Count(k, cat.Intern("o")))
	assert.Equal(t, 0, p.Count(k, cat.Intern("a")))

	set, err := p.Select(1)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(k, cat.Intern("s")))
	assert.True(t, set.Has(cat.Intern("a"), cat.Intern("a")))
	assert.False(t, set.Has(k, cat.Intern("o")))

	set, err = p.Select(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []symbols.ID{cat.Intern("s"), cat.Intern("o")}, set.ForInput(k))
}

// TestSelect_Backward: the backward table contributes pairs the forward
// table alone would not select.
func TestSelect_Backward(t *testing.T) {
	cat := symbols.NewCatalog()
	p := refine.NewPartners(false)
	p.Observe(0, cells(cat, "k:s", "t:s", "t:z"))
	p.Observe(1, cells(cat, "t:z", "t:s"))

	set, err := p.Select(1)
	require.NoError(t, err)
	k, tt := cat.Intern("k"), cat.Intern("t")
	s, z := cat.Intern("s"), cat.Intern("z")

	// forward: k->s, t->{s:2,z:2} keeps s (seen first)
	// backward: s->{t:2,k:1} keeps t, z->t
	assert.Equal(t, []refine.Mapping{{In: k, Out: s}, {In: tt, Out: s}, {In: tt, Out: z}}, set.Pairs())
	assert.Equal(t, []symbols.ID{k, tt}, set.ForOutput(s))
}

// TestSelect_InitialOnlyIsFunctional: without the backward table and k=1,
// every input keeps exactly one output.
func TestSelect_InitialOnlyIsFunctional(t *testing.T) {
	cat := symbols.NewCatalog()
	p := refine.NewPartners(true)
	p.Observe(0, cells(cat, "p:f", "a:a"))
	p.Observe(1, cells(cat, "p:b", "a:a"))
	p.Observe(2, cells(cat, "p:f", "a:e"))

	set, err := p.Select(1)
	require.NoError(t, err)
	for _, in := range []string{"p", "a"} {
		assert.Len(t, set.ForInput(cat.Intern(in)), 1, in)
	}
}

// TestSelect_Gaps: deletions and insertions are ordinary partners.
func TestSelect_Gaps(t *testing.T) {
	cat := symbols.NewCatalog()
	p := refine.NewPartners(false)
	p.Observe(0, cells(cat, "h:-", "a:a", "-:n"))

	set, err := p.Select(1)
	require.NoError(t, err)
	h, n := cat.Intern("h"), cat.Intern("n")
	assert.True(t, set.Has(h, symbols.Gap))
	assert.True(t, set.Has(symbols.Gap, n))

	kinds := map[model.Kind]int{}
	for _, m := range set.Pairs() {
		kinds[m.Kind()]++
	}
	assert.Equal(t, map[model.Kind]int{model.Substitution: 1, model.Deletion: 1, model.Insertion: 1}, kinds)
}

// TestMerge_MatchesSingleTable: splitting observations across workers and
// merging in any order selects the same set as one table.
func TestMerge_MatchesSingleTable(t *testing.T) {
	cat := symbols.NewCatalog()
	obs := []align.Alignment{
		cells(cat, "k:s", "a:a"),
		cells(cat, "k:o", "a:e"),
		cells(cat, "k:o", "a:a"),
		cells(cat, "k:s", "-:n"),
		cells(cat, "g:-", "a:e"),
	}

	single := refine.NewPartners(false)
	for i, a := range obs {
		single.Observe(i, a)
	}
	want, err := single.Select(1)
	require.NoError(t, err)

	w1, w2 := refine.NewPartners(false), refine.NewPartners(false)
	for i, a := range obs {
		if i%2 == 0 {
			w1.Observe(i, a)
		} else {
			w2.Observe(i, a)
		}
	}
	merged := refine.NewPartners(false)
	merged.Merge(w2)
	merged.Merge(w1)
	merged.Merge(nil)
	got, err := merged.Select(1)
	require.NoError(t, err)

	assert.Equal(t, want.Pairs(), got.Pairs())
}

func TestMappingSet_Model(t *testing.T) {
	cat := symbols.NewCatalog()
	a, b := cat.Intern("a"), cat.Intern("b")
	set := refine.NewMappingSet(
		refine.Mapping{In: b, Out: a},
		refine.Mapping{In: a, Out: a},
		refine.Mapping{In: a, Out: a},
	)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []refine.Mapping{{In: a, Out: a}, {In: b, Out: a}}, set.Pairs())

	m := set.Model()
	assert.Equal(t, 2, m.Len())
	w, ok := m.Weight(b, a)
	require.True(t, ok)
	assert.Zero(t, w)
	_, ok = m.Weight(a, b)
	assert.False(t, ok)
}
