package symbols

// Catalog maps tokens to IDs and back.
//
// The zero value is not usable; construct with NewCatalog so that the gap is
// registered under ID 0.
type Catalog struct {
	ids    map[string]ID // token → ID
	tokens []string      // ID → token; tokens[0] == GapToken
}

// NewCatalog returns a Catalog holding only the gap.
// Complexity: O(1).
func NewCatalog() *Catalog {
	return &Catalog{
		ids:    map[string]ID{GapToken: Gap},
		tokens: []string{GapToken},
	}
}

// Intern returns the ID of token, assigning the next free ID if the token
// has not been seen before.
// Complexity: O(1) amortized.
func (c *Catalog) Intern(token string) ID {
	if id, ok := c.ids[token]; ok {
		return id
	}
	id := ID(len(c.tokens))
	c.ids[token] = id
	c.tokens = append(c.tokens, token)

	return id
}

// InternAll interns every token of seq in order and returns the ID sequence.
// A nil or empty seq yields an empty, non-nil slice.
func (c *Catalog) InternAll(seq []string) []ID {
	out := make([]ID, len(seq))
	for i, tok := range seq {
		out[i] = c.Intern(tok)
	}

	return out
}

// ID returns the identifier of token without interning it.
func (c *Catalog) ID(token string) (ID, bool) {
	id, ok := c.ids[token]

	return id, ok
}

// Lookup returns the token registered under id.
// Lookup(Gap) returns GapToken.
func (c *Catalog) Lookup(id ID) (string, bool) {
	if int(id) >= len(c.tokens) {
		return "", false
	}

	return c.tokens[id], true
}

// Token is Lookup without the presence flag; unknown IDs render as "".
func (c *Catalog) Token(id ID) string {
	tok, _ := c.Lookup(id)

	return tok
}

// Tokens renders a whole ID sequence back into tokens.
func (c *Catalog) Tokens(seq []ID) []string {
	out := make([]string, len(seq))
	for i, id := range seq {
		out[i] = c.Token(id)
	}

	return out
}

// Len returns the number of registered tokens, gap included.
func (c *Catalog) Len() int { return len(c.tokens) }
