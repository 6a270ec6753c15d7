package report

import "errors"

// GapMark renders a gap inside an aligned form.
const GapMark = "-"

// DefaultGapGlyph renders the gap in mapping printouts.
const DefaultGapGlyph = "Ø"

// ErrNilCatalog is returned by constructors and writers given a nil catalog.
var ErrNilCatalog = errors.New("report: catalog is nil")

// Match is the rendered outcome of one aligned pair.
type Match struct {
	Index      int    // position of the pair in the input list
	Input      string // space-joined input side, gaps as "-"
	Output     string // space-joined output side, gaps as "-"
	Insertions int
	Deletions  int
	Matched    bool
}

// Line returns "input\toutput".
func (m Match) Line() string { return m.Input + "\t" + m.Output }

// Edits returns Insertions + Deletions.
func (m Match) Edits() int { return m.Insertions + m.Deletions }

// Homophone is a matching line seen more than once.
type Homophone struct {
	Count int    `yaml:"count" json:"count"`
	Line  string `yaml:"line" json:"line"`
}

// Summary aggregates a Reporter's tables.
type Summary struct {
	Aligned      int         `yaml:"aligned" json:"aligned"`
	Matches      int         `yaml:"matches" json:"matches"`
	InputGroups  int         `yaml:"input_groups" json:"input_groups"`
	OutputGroups int         `yaml:"output_groups" json:"output_groups"`
	Homophones   []Homophone `yaml:"homophones" json:"homophones"`
}

// MappingOptions configures WriteMappings.
type MappingOptions struct {
	GapGlyph string
}

// MappingOption is a functional option for WriteMappings.
type MappingOption func(*MappingOptions)

// WithGapGlyph overrides the glyph printed for the gap.
func WithGapGlyph(g string) MappingOption {
	return func(o *MappingOptions) { o.GapGlyph = g }
}

// DefaultMappingOptions returns GapGlyph "Ø".
func DefaultMappingOptions() MappingOptions {
	return MappingOptions{GapGlyph: DefaultGapGlyph}
}
