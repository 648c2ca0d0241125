package align

// edgeKind enumerates the nine moves the search can take out of a vertex
// (spec §4.2). Every edge consumes at least one side's cursor; the novel
// edges consume exactly one side, the unchanged/replaced edges consume
// both.
type edgeKind uint8

const (
	edgeUnchangedNode edgeKind = iota
	edgeUnchangedDelimiter
	edgeReplacedComment
	edgeNovelAtomLHS
	edgeNovelAtomRHS
	edgeNovelDelimiterLHS
	edgeNovelDelimiterRHS
	edgeNovelTreeLHS
	edgeNovelTreeRHS
)

func (k edgeKind) String() string {
	switch k {
	case edgeUnchangedNode:
		return "UnchangedNode"
	case edgeUnchangedDelimiter:
		return "UnchangedDelimiter"
	case edgeReplacedComment:
		return "ReplacedComment"
	case edgeNovelAtomLHS:
		return "NovelAtomLHS"
	case edgeNovelAtomRHS:
		return "NovelAtomRHS"
	case edgeNovelDelimiterLHS:
		return "NovelDelimiterLHS"
	case edgeNovelDelimiterRHS:
		return "NovelDelimiterRHS"
	case edgeNovelTreeLHS:
		return "NovelTreeLHS"
	case edgeNovelTreeRHS:
		return "NovelTreeRHS"
	default:
		return "edgeKind(?)"
	}
}

// Cost-ladder constants (spec §4.2). The ladder is deliberately ordered so
// that matching something is always cheaper than inventing/deleting it,
// and inventing/deleting a single contiguous run is always cheaper than
// the same content scattered across the diff.
const (
	maxDepthDifference  = 40
	costUnchangedBase   = 0
	costDelimiterBase   = 100
	costReplacedComment = 150
	costNovelContiguous = 200
	costNovelScattered  = 201

	// novelTreeThreshold is the strict lower bound on descendant count
	// before a NovelTree edge becomes available; a list with exactly 20
	// descendants is still walked node by node.
	novelTreeThreshold = 20
	// novelTreeBaseDescendants is subtracted from the real descendant
	// count before scaling by the per-descendant rate, so that crossing
	// the threshold doesn't impose the full per-node cost retroactively.
	novelTreeBaseDescendants = 10
)

// edge is one candidate move out of a vertex, carrying just enough data
// to compute its cost.
type edge struct {
	kind edgeKind

	// depthDifference is set for edgeUnchangedNode/edgeUnchangedDelimiter.
	depthDifference int64

	// contiguous is set for the four Novel(Atom|Delimiter) edges.
	contiguous bool

	// numDescendants is set for edgeNovelTreeLHS/edgeNovelTreeRHS.
	numDescendants int64
}

// cost returns the edge's weight in the search. Every weight here must
// stay non-negative, since the search is a plain (non-negative-weight)
// Dijkstra, not Bellman-Ford.
func (e edge) cost() int64 {
	switch e.kind {
	case edgeUnchangedNode:
		return minInt64(maxDepthDifference, e.depthDifference)
	case edgeUnchangedDelimiter:
		return costDelimiterBase + minInt64(maxDepthDifference, e.depthDifference)
	case edgeReplacedComment:
		return costReplacedComment
	case edgeNovelAtomLHS, edgeNovelAtomRHS, edgeNovelDelimiterLHS, edgeNovelDelimiterRHS:
		if e.contiguous {
			return costNovelContiguous
		}
		return costNovelScattered
	case edgeNovelTreeLHS, edgeNovelTreeRHS:
		// Collapsing a big unmatched subtree is priced off the
		// non-contiguous novel-delimiter rate: a NovelTree edge is, in
		// effect, "insert this many delimiters in a row", so its cost
		// must scale with the same constant a literal walk would have
		// used, less a fixed allowance for the first few descendants
		// (novelTreeBaseDescendants) so the edge only wins once the
		// subtree is genuinely large.
		perDescendant := edge{kind: edgeNovelDelimiterLHS, contiguous: false}.cost()
		return costNovelContiguous + (e.numDescendants-novelTreeBaseDescendants)*perDescendant
	default:
		panic("align: cost() called on an unrecognised edge kind")
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
