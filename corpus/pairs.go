package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLine bounds a single input line.
const maxLine = 1 << 20

// ReadPairs parses a pair list from r.
func ReadPairs(r io.Reader) ([]Pair, Skipped, error) {
	var (
		pairs []Pair
		sk    Skipped
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.HasPrefix(line, "#"):
			sk.Comments++
			continue
		case strings.TrimSpace(line) == "":
			sk.Blank++
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 2 {
			sk.Malformed = append(sk.Malformed, n)
			continue
		}
		pairs = append(pairs, Pair{
			Line: n,
			A:    strings.Fields(cols[0]),
			B:    strings.Fields(cols[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, sk, fmt.Errorf("corpus: read pairs: %w", err)
	}

	return pairs, sk, nil
}

// LoadPairs opens path and calls ReadPairs.
func LoadPairs(path string) ([]Pair, Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Skipped{}, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadPairs(f)
}
