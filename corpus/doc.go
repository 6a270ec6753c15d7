// Package corpus reads the tab-separated inputs of the learner and of the
// random-cognate experiments.
//
// Pair lists hold one sequence pair per line: two tab-separated columns,
// each a whitespace-separated token sequence. Lines starting with "#" and
// blank lines are ignored; any other line without exactly two columns is
// skipped and reported in Skipped, never fatal.
//
// Root lists hold three tab-separated columns, root, count and probability,
// as produced by a language-model root sampler. Each root enters the draw
// pool count times; the probability column is carried but unused.
package corpus
