// Package cooccur estimates raw phoneme co-occurrence counts across candidate
// cognate pairs under a monotonic windowing rule.
//
// Algorithm Outline:
//
//  1. Forward pass. For every pair (A, B), for every position i of A and
//     every position j ≥ i of B, increment count(A[i], B[j]).
//  2. Reverse pass (skipped when InitialOnly is set). For every position i
//     of B and every position j ≥ i of A, increment count(A[j], B[i]).
//  3. Total is the number of increments, so Total == Σ count(a, b).
//
// Only positions that could align without reordering contribute, which
// biases the counts towards plausible substitutions without running a real
// aligner. Gap pairs are never counted here: insertion and deletion costs are
// fixed constants of the model, not learned.
//
// InitialOnly truncates every sequence to its first symbol before counting
// (Kessler's initials-only comparison); on length-1 sequences the reverse pass
// would double every count, so it is not run.
//
// Complexity:
//
//	Time   = O(Σ |A|·|B|) over all pairs
//	Memory = O(distinct (a, b) keys)
//
// Errors:
//   - ErrNoCoverage: Total is zero (no pairs, or only empty sequences).
package cooccur
