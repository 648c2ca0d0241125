package align

import "github.com/maekawatoshiki/difftastic/internal/syntax"

// mark writes the Change slot of every node touched by route, in forward
// order (spec §4.4). Each routeStep's `at` vertex holds the actual node
// pointers the edge consumed — by the time the search finished, those
// cursors have long since advanced, so the route itself is the only
// record of which nodes each edge applied to.
func mark(route []routeStep) {
	for _, step := range route {
		markStep(step)
	}
}

func markStep(step routeStep) {
	v := step.at

	switch step.via.kind {
	case edgeUnchangedNode:
		syntax.MarkUnchangedDeep(v.lhs, v.rhs)

	case edgeUnchangedDelimiter:
		v.lhs.MarkUnchangedShallow(v.rhs)
		v.rhs.MarkUnchangedShallow(v.lhs)

	case edgeReplacedComment:
		v.lhs.MarkReplacedComment(v.rhs)
		v.rhs.MarkReplacedComment(v.lhs)

	case edgeNovelAtomLHS, edgeNovelDelimiterLHS:
		v.lhs.MarkNovelShallow()

	case edgeNovelAtomRHS, edgeNovelDelimiterRHS:
		v.rhs.MarkNovelShallow()

	case edgeNovelTreeLHS:
		v.lhs.MarkNovelDeep()

	case edgeNovelTreeRHS:
		v.rhs.MarkNovelDeep()

	default:
		panic("align: mark() called on an unrecognised edge kind")
	}
}
