// Package report renders second-pass alignments, decides which pairs match
// and counts homophones.
//
// A pair matches when its alignment has at most MaxZeroes gap cells
// (insertions + deletions). Every aligned pair, matched or not, adds its
// rendered input and output forms to the input and output homophone tables;
// matched pairs also add their "input\toutput" line to the matching table.
//
// A homophone group is a distinct form seen more than once. The summary
// reports one group count per language and lists every matching line seen
// more than once, in first-seen order.
//
// Output formats (tab separated):
//
//	k a t	k a t                 one line per match
//	HOMOPHONE_GROUPS:	1	1       input groups, output groups
//	HOMOPHONE:	2	k a t	k a t  count, matching line
//	k	->	Ø                       one line per mapping, gap as "Ø"
package report
