// Package lattice composes two phoneme sequences with a correspondence model
// into an explicit weighted DAG and extracts its shortest path.
//
// 🚀 What is the lattice?
//
//	For sequences a (length n) and b (length m) and a single-state model M,
//	the composition a ∘ M ∘ b has one state per (i, j) with 0 ≤ i ≤ n,
//	0 ≤ j ≤ m: "i symbols of a consumed, j symbols of b produced".
//	Arcs mirror the model:
//	  • (i,j) → (i+1,j+1)  a[i]:b[j]  substitution
//	  • (i,j) → (i+1,j)    a[i]:ε     deletion
//	  • (i,j) → (i,j+1)    ε:b[j]     insertion
//	An arc exists only if M has the corresponding in:out label.
//	State (0,0) is the start, (n,m) the single final state.
//
// ✨ Pipeline:
//  1. Compose: build the Graph (O(n·m) states, ≤ 3·n·m arcs).
//  2. ShortestPath: Dijkstra from start to final with float64 weights,
//     lazy decrease-key, deterministic tie-breaking on (distance, state).
//  3. Linearize: topologically sort the path subgraph and read its arcs
//     in order, giving the left-to-right alignment.
//
// This is the exact conceptual model of the aligner (composition followed by
// shortest path and topological sort). The align package also offers a
// direct dynamic program over the same lattice, which is faster; both give
// the same minimum cost.
//
// Errors:
//   - ErrVertexNotFound: an edge or query references a state out of range.
//   - ErrNegativeWeight: an arc with negative weight was added.
//   - ErrNoPath: the final state is unreachable.
//   - ErrCycleDetected: TopologicalSort met a cycle (never for a lattice).
package lattice
