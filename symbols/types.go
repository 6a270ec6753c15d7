package symbols

// ID is the dense integer identifier of an interned token.
type ID uint32

const (
	// Gap is the reserved identifier of the empty symbol used for insertions
	// and deletions.
	Gap ID = 0

	// GapToken is the token registered under Gap.
	GapToken = "<epsilon>"
)

// IsGap reports whether id is the reserved gap identifier.
func (id ID) IsGap() bool { return id == Gap }
