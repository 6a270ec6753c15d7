package experiment

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Bin is one histogram bucket: Runs experiments had exactly Successes
// successes.
type Bin struct {
	Successes int
	Runs      int
}

// Summary describes the distribution of success counts.
type Summary struct {
	Runs      int
	Mean      float64
	StdDev    float64
	Median    float64
	Min       int
	Max       int
	Histogram []Bin
}

// Summarize computes the histogram and moments of outcome success counts.
// An empty input yields the zero Summary.
func Summarize(outcomes []Outcome) Summary {
	if len(outcomes) == 0 {
		return Summary{}
	}
	x := make([]float64, len(outcomes))
	for i, o := range outcomes {
		x[i] = float64(o.Successes)
	}
	slices.Sort(x)

	s := Summary{Runs: len(x), Min: int(x[0]), Max: int(x[len(x)-1])}
	s.Mean, s.StdDev = stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		s.StdDev = 0
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, x, nil)

	// one unit-wide bin per integer count in [Min, Max]
	dividers := make([]float64, 0, s.Max-s.Min+2)
	for v := s.Min; v <= s.Max+1; v++ {
		dividers = append(dividers, float64(v))
	}
	counts := stat.Histogram(nil, dividers, x, nil)
	for k, c := range counts {
		if c > 0 {
			s.Histogram = append(s.Histogram, Bin{Successes: s.Min + k, Runs: int(c)})
		}
	}

	return s
}

// WriteSummary writes the moments and one "successes\truns" line per bin.
func WriteSummary(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "RUNS:\t%d\nMEAN:\t%.4f\nSTDDEV:\t%.4f\nMEDIAN:\t%.1f\n", s.Runs, s.Mean, s.StdDev, s.Median)
	for _, b := range s.Histogram {
		fmt.Fprintf(bw, "BIN:\t%d\t%d\n", b.Successes, b.Runs)
	}

	return bw.Flush()
}
