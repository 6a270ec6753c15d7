// Package refine turns first-pass alignments into a sparse, bidirectionally
// validated set of phoneme correspondences.
//
// Partners accumulates, for every input symbol, how often each output
// symbol was aligned to it (forward table) and, unless the run is
// initial-only, the same counts keyed by output symbol (backward table).
// The gap participates like any other symbol: (x, ε) deletions and (ε, y)
// insertions are observed too.
//
// Select keeps, per row of each table, the k most frequent partners and
// returns the union of the kept pairs. With a forward table k → {s: 5, o: 2, m: 1}
// and k = 1 the pair (k, s) survives; the backward table may independently
// add (t, s) if /t/ is the most common partner of /s/.
//
// Ties on frequency are broken by first observation: the pair index passed
// to Observe, then the cell position inside that alignment. Partial tables
// built by concurrent workers merge by summing counts and keeping the
// earliest observation, so the selection never depends on worker count.
package refine
