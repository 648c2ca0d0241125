package align

import "github.com/maekawatoshiki/difftastic/internal/syntax"

// vertex is one state in the implicit search graph: a cursor into each
// forest, plus the line number of the most recently stepped-over novel
// node on that side (nil if the previous move on that side was not novel,
// or there was no previous move). The prevNovel fields exist purely to
// detect contiguous runs of novel nodes, so that a single multi-atom
// insertion costs less than the same atoms scattered across unrelated
// edits (spec §4.2, NovelAtom/NovelDelimiter contiguity).
//
// A nil cursor means that side of the forest has been fully consumed.
type vertex struct {
	lhs *syntax.Node
	rhs *syntax.Node

	lhsPrevNovel *int
	rhsPrevNovel *int
}

// isEnd reports whether both cursors are exhausted, i.e. this is the
// terminal vertex of the search.
func (v vertex) isEnd() bool {
	return v.lhs == nil && v.rhs == nil
}

// key returns the contiguity-free identity used to deduplicate vertices in
// the predecessors map. Two vertices with the same cursor pair but
// different prevNovel bookkeeping are the same vertex for visited-set
// purposes: revisiting it via a different contiguity history can only
// cost more, since the search always finalises the first (cheapest)
// arrival at a given key (spec §4.3).
//
// Storing the two *syntax.Node pointers directly — rather than copying out
// their numeric IDs into a custom key type — keeps this exactly as compact
// as a pair of node identifiers while staying comparable as a Go map key.
type vertexKey struct {
	lhs *syntax.Node
	rhs *syntax.Node
}

func (v vertex) key() vertexKey {
	return vertexKey{lhs: v.lhs, rhs: v.rhs}
}

// sameLine reports whether prev (a possibly-nil "last novel line") equals
// line. This is the contiguity test applied at every novel-atom and
// novel-delimiter edge.
func sameLine(prev *int, line int) bool {
	return prev != nil && *prev == line
}

// intPtr returns a pointer to a copy of line, for populating prevNovel
// fields without aliasing the caller's variable.
func intPtr(line int) *int {
	return &line
}
