package corpus

import "errors"

// Sentinel errors for corpus parsing.
var (
	// ErrBadRoot indicates a root line that is not root\tcount\tprob.
	ErrBadRoot = errors.New("corpus: malformed root line")

	// ErrNegativeCount indicates a root with count < 0.
	ErrNegativeCount = errors.New("corpus: negative root count")
)

// Pair is one raw sequence pair. Line is 1-based.
type Pair struct {
	Line int
	A    []string
	B    []string
}

// Skipped describes ignored input lines.
type Skipped struct {
	Comments  int   // "#" lines
	Blank     int   // empty or whitespace-only lines
	Malformed []int // 1-based line numbers with a column count other than 2
}

// Count returns the number of malformed lines.
func (s Skipped) Count() int { return len(s.Malformed) }

// Root is one entry of a root list.
type Root struct {
	Form  string
	Count int
	Prob  float64
}
