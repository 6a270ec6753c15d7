// Package align computes minimum-cost alignments of two phoneme sequences
// against a correspondence model.
//
// 🚀 What is an alignment?
//
//	An ordered list of cells, each a substitution (x, y), a deletion (x, ε)
//	or an insertion (ε, y), that consumes the input sequence left to right
//	and produces the output sequence left to right. Its cost is the sum of
//	the model weights of its cells.
//
// ✨ Two engines, one answer:
//   - MethodDP (default): the single-state model turns composition plus
//     shortest path into the classic edit-distance recurrence
//     D[i][j] = min(D[i-1][j-1] + w(a_i:b_j),
//     D[i-1][j]   + w(a_i:ε),
//     D[i][j-1]   + w(ε:b_j))
//     with missing arcs costing +Inf. O(n·m) time and memory.
//   - MethodLattice: builds the composition explicitly (package lattice),
//     runs Dijkstra and linearizes the path by topological sort. Slower,
//     but mirrors the transducer formulation step by step.
//
// Tie-breaking (deterministic for a fixed model and input):
//   - MethodDP: at each cell a candidate replaces the current best only if
//     strictly cheaper, candidates evaluated as substitution, deletion,
//     insertion. Equal-cost alternatives therefore prefer substitution,
//     then deletion, then insertion at the cell where they meet.
//   - MethodLattice: arcs are relaxed in the same order and states leave the
//     heap by (distance, state index); only strict improvements replace a
//     predecessor.
//
// Both engines always agree on the cost. On ties they may pick different
// (equally cheap) cells; within one engine the choice never changes between
// runs.
//
// Errors:
//   - ErrNilModel: New was given a nil model.
//   - ErrNoAlignment: no path exists (empty model, or a symbol without arcs).
//   - ErrUnknownMethod: unsupported Method value.
package align
