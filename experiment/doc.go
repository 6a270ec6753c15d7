// Package experiment runs random-cognate experiments: it repeatedly draws
// etyma from two root lists, pairs them by position, and counts how many
// pairs look related.
//
// Two judges are available:
//   - MethodAligner runs the full two-pass learner on the drawn pairs and
//     counts its matches.
//   - MethodLevenshtein counts pairs whose token-level edit distance is at
//     most LevenshteinThreshold.
//
// Each experiment i draws from its own generator seeded with (Seed, i), so
// results are reproducible and independent of how many experiments run in
// parallel. Output per experiment is the judge's lines followed by
//
//	RUN:	<i>	<successes>
//
// Summarize reduces outcomes to a histogram plus mean, standard deviation
// and median of the success counts.
package experiment
