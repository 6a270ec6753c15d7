package corpus

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// Roots is a root list together with its expanded draw pool.
// A Roots is read-only after construction and safe for concurrent use.
type Roots struct {
	entries []Root
	pool    []string
}

// NewRoots builds a Roots from entries.
func NewRoots(entries []Root) *Roots {
	r := &Roots{entries: append([]Root(nil), entries...)}
	r.expand()

	return r
}

func (r *Roots) expand() {
	n := 0
	for _, e := range r.entries {
		n += e.Count
	}
	r.pool = make([]string, 0, n)
	for _, e := range r.entries {
		for i := 0; i < e.Count; i++ {
			r.pool = append(r.pool, e.Form)
		}
	}
}

// ReadRoots parses root\tcount\tprob lines. Blank lines and "#" lines are
// ignored; anything else malformed is an error naming the line.
func ReadRoots(r io.Reader) (*Roots, error) {
	var entries []Root
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			return nil, fmt.Errorf("%w: line %d: %d columns", ErrBadRoot, n, len(cols))
		}
		count, err := strconv.Atoi(strings.TrimSpace(cols[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: count: %v", ErrBadRoot, n, err)
		}
		if count < 0 {
			return nil, fmt.Errorf("%w: line %d", ErrNegativeCount, n)
		}
		prob, err := strconv.ParseFloat(strings.TrimSpace(cols[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: prob: %v", ErrBadRoot, n, err)
		}
		entries = append(entries, Root{Form: cols[0], Count: count, Prob: prob})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: read roots: %w", err)
	}

	return NewRoots(entries), nil
}

// LoadRoots opens path and calls ReadRoots.
func LoadRoots(path string) (*Roots, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadRoots(f)
}

// Entries returns a copy of the distinct root entries.
func (r *Roots) Entries() []Root { return append([]Root(nil), r.entries...) }

// PoolSize returns the number of draws available (sum of counts).
func (r *Roots) PoolSize() int { return len(r.pool) }

// Limit returns a new Roots keeping a random subset of at most maxDistinct
// entries. A negative maxDistinct keeps everything.
func (r *Roots) Limit(rng *rand.Rand, maxDistinct int) *Roots {
	if maxDistinct < 0 {
		return NewRoots(r.entries)
	}
	entries := append([]Root(nil), r.entries...)
	rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
	if len(entries) > maxDistinct {
		entries = entries[:maxDistinct]
	}

	return NewRoots(entries)
}

// Etyma draws up to n etyma from the shuffled pool, allowing at most
// maxHomophones copies of any one root, then shuffles the draw.
func (r *Roots) Etyma(rng *rand.Rand, n, maxHomophones int) []string {
	pool := append([]string(nil), r.pool...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	out := make([]string, 0, min(n, len(pool)))
	seen := make(map[string]int)
	for _, root := range pool {
		if len(out) == n {
			break
		}
		if seen[root] >= maxHomophones {
			continue
		}
		seen[root]++
		out = append(out, root)
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}
