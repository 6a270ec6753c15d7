package refine

import (
	"errors"

	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/symbols"
)

// ErrBadLimit is returned by Select when k < 1.
var ErrBadLimit = errors.New("refine: max allowed mappings must be >= 1")

// Mapping is one accepted correspondence. Either side may be the gap.
type Mapping struct {
	In  symbols.ID
	Out symbols.ID
}

// Kind classifies the mapping as substitution, deletion or insertion.
func (m Mapping) Kind() model.Kind { return model.KindOf(m.In, m.Out) }

// stamp orders observations: earlier pair first, then earlier cell.
type stamp struct {
	seq  int
	cell int
}

func (s stamp) before(o stamp) bool {
	if s.seq != o.seq {
		return s.seq < o.seq
	}

	return s.cell < o.cell
}

// tally is one partner's frequency and first observation.
type tally struct {
	count int
	first stamp
}
