// Package model builds the weighted correspondence model used to score
// alignments between two phoneme sequences.
//
// Conceptually the model is a weighted transducer with exactly one state that
// is both initial and final; every arc is a self-loop labelled in:out with a
// non-negative weight. With a single state the topology carries no
// information, so Model stores only the flat arc map (in, out) → weight.
//
// Arc kinds:
//   - substitution  a:b   weight = −ln(count(a,b) / total)
//   - deletion      a:ε   weight = DeletionPenalty  (for every a seen on the left)
//   - insertion     ε:b   weight = InsertionPenalty (for every b seen on the right)
//
// The default penalties (100) are two orders of magnitude above a typical
// substitution weight, so gaps are used only when no substitution path
// exists or when the substitutions are extremely rare.
//
// Refinement replaces the learned model with FromMappings: zero-weight arcs
// restricted to the selected correspondences and nothing else.
//
// A Model with zero arcs covers nothing; aligners treat it as "no path".
package model
