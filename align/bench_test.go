package align_test

import (
	"testing"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/symbols"
)

// benchmarkAlign aligns two length-n words over a small alphabet.
func benchmarkAlign(b *testing.B, method align.Method, n int) {
	cat := symbols.NewCatalog()
	alphabet := chars("ptkaiu")
	w1, w2 := make([]string, n), make([]string, n)
	for i := 0; i < n; i++ {
		w1[i] = alphabet[i%len(alphabet)]
		w2[i] = alphabet[(i+1)%len(alphabet)]
	}
	m := trained(b, cat, [2][]string{w1, w2})
	e, err := align.New(m, align.WithMethod(method))
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	x, y := cat.InternAll(w1), cat.InternAll(w2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Align(x, y); err != nil {
			b.Fatalf("Align: %v", err)
		}
	}
}

func BenchmarkAlign_DP8(b *testing.B)       { benchmarkAlign(b, align.MethodDP, 8) }
func BenchmarkAlign_DP64(b *testing.B)      { benchmarkAlign(b, align.MethodDP, 64) }
func BenchmarkAlign_Lattice8(b *testing.B)  { benchmarkAlign(b, align.MethodLattice, 8) }
func BenchmarkAlign_Lattice64(b *testing.B) { benchmarkAlign(b, align.MethodLattice, 64) }
