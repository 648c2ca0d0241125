package syntax

import "fmt"

// ChangeLabel is the label the route marker stamps onto a node's Change
// slot, per spec §3/§4.4.
type ChangeLabel uint8

const (
	// ChangeUnset marks a node the marker has not yet visited. align's
	// public façade guarantees every node's slot leaves ChangeUnset
	// behind once alignment completes (spec §4.5's Completeness property).
	ChangeUnset ChangeLabel = iota
	// ChangeUnchanged marks a node paired with an equivalent node on the
	// other side (Pair holds that counterpart).
	ChangeUnchanged
	// ChangeReplacedComment marks a comment atom textually similar to,
	// but not identical with, its counterpart (Pair).
	ChangeReplacedComment
	// ChangeNovel marks a node present only on this side of the diff.
	ChangeNovel
)

// String renders the label for diagnostics.
func (c ChangeLabel) String() string {
	switch c {
	case ChangeUnset:
		return "Unset"
	case ChangeUnchanged:
		return "Unchanged"
	case ChangeReplacedComment:
		return "ReplacedComment"
	case ChangeNovel:
		return "Novel"
	default:
		return "ChangeLabel(?)"
	}
}

// Change is the mutable label attached to every Node. It is written
// exactly once, by the route marker, after the shortest-path search
// completes (spec §3 "Lifecycles").
type Change struct {
	Label ChangeLabel
	// Pair is the counterpart node on the other tree. Set for
	// ChangeUnchanged and ChangeReplacedComment; nil otherwise.
	Pair *Node
}

// setOnce writes the change slot, panicking if it was already set. A
// double write is a programming-invariant violation (spec §7), not a
// recoverable error.
func (n *Node) setOnce(label ChangeLabel, pair *Node) {
	if n.change.Label != ChangeUnset {
		panic(fmt.Sprintf(errChangeAlreadySet, n.id, n.kind, n.change.Label))
	}
	n.change = Change{Label: label, Pair: pair}
}

// MarkUnchangedShallow labels n as Unchanged(pair) without touching n's
// descendants (used for UnchangedDelimiter: only the delimiter matched,
// children are aligned by later steps).
func (n *Node) MarkUnchangedShallow(pair *Node) {
	n.setOnce(ChangeUnchanged, pair)
}

// MarkUnchangedDeep labels n and pair as mutually Unchanged, then
// recurses into their children pairwise by index. Both subtrees must be
// textually identical (the caller has already checked EqualContent), so
// they have the same shape and the same number of children at every
// level — it is safe to zip them positionally.
func MarkUnchangedDeep(lhs, rhs *Node) {
	lhs.setOnce(ChangeUnchanged, rhs)
	rhs.setOnce(ChangeUnchanged, lhs)

	if lhs.kind == KindList {
		for i := range lhs.children {
			MarkUnchangedDeep(lhs.children[i], rhs.children[i])
		}
	}
}

// MarkReplacedComment labels n as ReplacedComment(pair).
func (n *Node) MarkReplacedComment(pair *Node) {
	n.setOnce(ChangeReplacedComment, pair)
}

// MarkNovelShallow labels n as Novel without touching its descendants
// (used when only the delimiter or a single atom is stepped over; any
// children are visited, and labelled, by subsequent edges).
func (n *Node) MarkNovelShallow() {
	n.setOnce(ChangeNovel, nil)
}

// MarkNovelDeep labels n and every node in its subtree as Novel in one
// shot (used by NovelTree edges to collapse a large unmatched subtree).
func (n *Node) MarkNovelDeep() {
	n.setOnce(ChangeNovel, nil)
	for _, c := range n.children {
		c.MarkNovelDeep()
	}
}
