package align

import "github.com/maekawatoshiki/difftastic/internal/syntax"

// commentSimilarityThreshold is the normalised Levenshtein similarity two
// comment atoms must strictly exceed before a ReplacedComment edge is
// offered for them (spec §4.2).
const commentSimilarityThreshold = 0.4

// candidate pairs one edge with the vertex it leads to.
type candidate struct {
	edge edge
	next vertex
}

// neighbours enumerates every edge leaving v (spec §4.2.A/B/C). At most
// six candidates are ever produced: up to three from the "both sides
// present" group (A), one or two from stepping the LHS cursor alone (B),
// and one or two from stepping the RHS cursor alone (C). The end vertex
// (both cursors nil) has none, which is how the search terminates.
func neighbours(v vertex) []candidate {
	var out []candidate

	if v.lhs != nil && v.rhs != nil {
		out = groupBoth(v, out)
	}
	if v.lhs != nil {
		out = groupLHS(v, out)
	}
	if v.rhs != nil {
		out = groupRHS(v, out)
	}

	return out
}

func depthDifference(a, b *syntax.Node) int64 {
	d := int64(a.AncestorDepth()) - int64(b.AncestorDepth())
	if d < 0 {
		return -d
	}
	return d
}

// groupBoth appends the edges available only when both cursors point at
// real nodes: matching the whole subtree, matching just a list's
// delimiters, and replacing a similar comment.
func groupBoth(v vertex, out []candidate) []candidate {
	lhs, rhs := v.lhs, v.rhs

	if syntax.EqualContent(lhs, rhs) {
		out = append(out, candidate{
			edge: edge{kind: edgeUnchangedNode, depthDifference: depthDifference(lhs, rhs)},
			next: vertex{lhs: lhs.Next(), rhs: rhs.Next()},
		})
	}

	if lhs.IsList() && rhs.IsList() &&
		lhs.OpenContent() == rhs.OpenContent() && lhs.CloseContent() == rhs.CloseContent() {
		out = append(out, candidate{
			edge: edge{kind: edgeUnchangedDelimiter, depthDifference: depthDifference(lhs, rhs)},
			next: vertex{lhs: lhs.FirstChildOrNext(), rhs: rhs.FirstChildOrNext()},
		})
	}

	if lhs.IsAtom() && rhs.IsAtom() && lhs.IsComment() && rhs.IsComment() &&
		similarity(lhs.Content(), rhs.Content()) > commentSimilarityThreshold {
		out = append(out, candidate{
			edge: edge{kind: edgeReplacedComment},
			next: vertex{lhs: lhs.Next(), rhs: rhs.Next()},
		})
	}

	return out
}

// groupLHS appends the edges that consume only the LHS cursor: step over
// a novel atom, step into (or over) a novel list, and — for sufficiently
// large lists — collapse the whole subtree as novel in one move.
func groupLHS(v vertex, out []candidate) []candidate {
	lhs := v.lhs

	if lhs.IsAtom() {
		out = append(out, candidate{
			edge: edge{kind: edgeNovelAtomLHS, contiguous: sameLine(v.lhsPrevNovel, lhs.FirstLine())},
			next: vertex{
				lhs: lhs.Next(), rhs: v.rhs,
				lhsPrevNovel: intPtr(lhs.LastLine()), rhsPrevNovel: v.rhsPrevNovel,
			},
		})
		return out
	}

	out = append(out, candidate{
		edge: edge{kind: edgeNovelDelimiterLHS, contiguous: sameLine(v.lhsPrevNovel, lhs.FirstLine())},
		next: vertex{
			lhs: lhs.FirstChildOrNext(), rhs: v.rhs,
			lhsPrevNovel: intPtr(lhs.OpenLine()), rhsPrevNovel: v.rhsPrevNovel,
		},
	})

	if int64(lhs.DescendantCount()) > novelTreeThreshold {
		out = append(out, candidate{
			edge: edge{kind: edgeNovelTreeLHS, numDescendants: int64(lhs.DescendantCount())},
			next: vertex{
				lhs: lhs.Next(), rhs: v.rhs,
				lhsPrevNovel: v.lhsPrevNovel, rhsPrevNovel: v.rhsPrevNovel,
			},
		})
	}

	return out
}

// groupRHS mirrors groupLHS for the RHS cursor.
func groupRHS(v vertex, out []candidate) []candidate {
	rhs := v.rhs

	if rhs.IsAtom() {
		out = append(out, candidate{
			edge: edge{kind: edgeNovelAtomRHS, contiguous: sameLine(v.rhsPrevNovel, rhs.FirstLine())},
			next: vertex{
				lhs: v.lhs, rhs: rhs.Next(),
				lhsPrevNovel: v.lhsPrevNovel, rhsPrevNovel: intPtr(rhs.LastLine()),
			},
		})
		return out
	}

	out = append(out, candidate{
		edge: edge{kind: edgeNovelDelimiterRHS, contiguous: sameLine(v.rhsPrevNovel, rhs.FirstLine())},
		next: vertex{
			lhs: v.lhs, rhs: rhs.FirstChildOrNext(),
			lhsPrevNovel: v.lhsPrevNovel, rhsPrevNovel: intPtr(rhs.OpenLine()),
		},
	})

	if int64(rhs.DescendantCount()) > novelTreeThreshold {
		out = append(out, candidate{
			edge: edge{kind: edgeNovelTreeRHS, numDescendants: int64(rhs.DescendantCount())},
			next: vertex{
				lhs: v.lhs, rhs: rhs.Next(),
				lhsPrevNovel: v.lhsPrevNovel, rhsPrevNovel: v.rhsPrevNovel,
			},
		})
	}

	return out
}
