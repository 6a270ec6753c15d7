// Package soundlaw learns regular phoneme correspondences between two
// related vocabularies and measures how many word pairs they explain.
//
// 🚀 Pipeline
//
//	symbols  → intern phoneme tokens into dense IDs (gap = 0)
//	cooccur  → count monotonic co-occurrences of symbol pairs
//	model    → turn counts into −ln(p) substitution weights plus gap arcs
//	align    → minimum-cost alignment (edit-distance DP or explicit lattice)
//	refine   → keep the top-k partners per symbol in both directions
//	report   → realign, decide matches, count homophones
//	learner  → orchestrate the two passes with a bounded worker pool
//
// Around the core:
//
//	corpus      pair lists and root lists (TSV)
//	experiment  random-cognate baselines over drawn etyma
//	lattice     composition graph, Dijkstra and topological sort
//	cmd/soundlaw, cmd/cognatesim: command-line front ends
//
// Library packages return sentinel errors and never log; the learner and the
// experiment runner carry slog logging, OpenTelemetry spans and metrics.
package soundlaw
