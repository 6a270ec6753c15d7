// Package learner runs the two-pass correspondence pipeline end to end.
//
// Phases (sequential; each pass fans out per pair):
//
//  1. Intern both sides of every pair into a per-run symbol catalog. With
//     InitialOnly, each sequence is cut to its first symbol for the whole run.
//  2. Estimate co-occurrence statistics and build the initial model.
//  3. Pass 1: align every pair against the initial model and tally partners.
//  4. Refine: keep MaxAllowedMappings partners per symbol per direction and
//     build the zero-weight refined model.
//  5. Pass 2: realign with the refined model; pairs without a path are
//     skipped, the rest are reported in input order.
//
// The catalog, statistics and models are frozen before a pass starts, so
// workers only read shared state. Pass 1 workers tally into private
// refine.Partners merged after the barrier; pass 2 workers write into
// disjoint result slots. Output is byte-identical for any worker count.
//
// Errors:
//   - ErrBadConfig: invalid Config (wrapped with the offending field).
//   - cooccur.ErrNoCoverage, wrapped: the input produced no statistics.
//   - ctx.Err(): cancellation, checked between pairs.
package learner
