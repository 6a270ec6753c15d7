package report

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/soundlaw/refine"
	"github.com/katalvlaran/soundlaw/symbols"
)

// WriteMatches writes "input\toutput" for every matched entry of ms, in
// slice order. Unmatched entries are skipped.
func WriteMatches(w io.Writer, ms []Match) error {
	bw := bufio.NewWriter(w)
	for _, m := range ms {
		if !m.Matched {
			continue
		}
		if _, err := fmt.Fprintln(bw, m.Line()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteSummary writes the HOMOPHONE_GROUPS line followed by one HOMOPHONE
// line per repeated match.
func WriteSummary(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "HOMOPHONE_GROUPS:\t%d\t%d\n", s.InputGroups, s.OutputGroups)
	for _, h := range s.Homophones {
		fmt.Fprintf(bw, "HOMOPHONE:\t%d\t%s\n", h.Count, h.Line)
	}

	return bw.Flush()
}

// WriteMappings writes "in\t->\tout" per mapping, ordered as set.Pairs.
func WriteMappings(w io.Writer, cat *symbols.Catalog, set refine.MappingSet, opts ...MappingOption) error {
	if cat == nil {
		return ErrNilCatalog
	}
	cfg := DefaultMappingOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	bw := bufio.NewWriter(w)
	for _, m := range set.Pairs() {
		in := glyph(cat, m.In, cfg.GapGlyph)
		out := glyph(cat, m.Out, cfg.GapGlyph)
		fmt.Fprintf(bw, "%s\t->\t%s\n", in, out)
	}

	return bw.Flush()
}

func glyph(cat *symbols.Catalog, id symbols.ID, gap string) string {
	if id.IsGap() {
		return gap
	}

	return cat.Token(id)
}

// mappingDoc is the YAML shape of a mapping report.
type mappingDoc struct {
	Mappings []mappingEntry `yaml:"mappings"`
}

type mappingEntry struct {
	In   string `yaml:"in"`
	Out  string `yaml:"out"`
	Kind string `yaml:"kind"`
}

// WriteMappingsYAML writes the mapping set as a YAML document:
//
//	mappings:
//	  - in: k
//	    out: s
//	    kind: substitution
//
// The gap renders as the empty string.
func WriteMappingsYAML(w io.Writer, cat *symbols.Catalog, set refine.MappingSet) error {
	if cat == nil {
		return ErrNilCatalog
	}
	doc := mappingDoc{Mappings: make([]mappingEntry, 0, set.Len())}
	for _, m := range set.Pairs() {
		doc.Mappings = append(doc.Mappings, mappingEntry{
			In:   glyph(cat, m.In, ""),
			Out:  glyph(cat, m.Out, ""),
			Kind: m.Kind().String(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode mappings: %w", err)
	}

	return enc.Close()
}
