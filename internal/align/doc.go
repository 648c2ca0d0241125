// Package align computes the cheapest alignment between two syntax-node
// forests and stamps the result onto each node's Change slot (spec §4).
//
// The alignment problem is framed as a single-source shortest-path search
// over an implicit graph. A vertex is a pair of cursors, one into each
// forest, plus a small amount of "contiguity" bookkeeping used to penalise
// fragmented edits; an edge is one of the nine moves in the cost ladder
// (match a node, match a delimiter, replace a comment, step over a novel
// atom/delimiter, or collapse a large novel subtree). The search never
// builds the graph up front — neighbours are generated on demand from the
// current vertex — so its memory cost is bounded by the number of vertices
// actually visited, not by the product of the two forests' sizes.
//
// Complexity:
//
//   - Time: O(V log V) where V is the number of distinct (lhs, rhs) cursor
//     pairs reachable from the start vertex. Each vertex is expanded at
//     most once; each expansion pushes a constant number of candidate
//     edges (at most six) onto the heap.
//   - Space: O(V) for the predecessors map, which doubles as the visited
//     set and the backpointer table used to reconstruct the route.
//
// Package align never imports internal/lang: comment-similarity scoring
// (normalised Levenshtein) lives here because it is a property of the
// ReplacedComment edge's cost, not of any particular source language.
package align
