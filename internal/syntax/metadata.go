// Metadata computation: the single post-parse walk spec §6 requires of
// the external parser. Freeze assigns ancestor depth, the preorder
// next-link, descendant counts, content hashes, and first/last source
// lines in one linear pass per concern. Every pass below walks with an
// explicit stack rather than recursion, so a deeply right-nested input
// (spec §2's tens-of-thousands-of-nodes trees) can't overflow the
// goroutine stack. The teacher's own traversals (dfs.DFS's `traverse`)
// recurse per tree level; the explicit-stack shape here is grounded
// instead on tsp/eulerian.go's Hierholzer walk, the one place in the
// pack that threads an iterative stack through a graph traversal.
package syntax

// Freeze computes and caches every piece of shared metadata for a forest
// of top-level sibling roots: ancestor depth, descendant count, content
// hash, first/last source line, and the preorder next-link (spec §3).
// roots need not share a parent — a source file's top level is itself a
// sequence of siblings, not a single wrapped list (see SPEC_FULL.md §12).
//
// Freeze must be called exactly once per forest, after construction and
// before the tree is handed to internal/align; align.Align does not call
// Freeze itself. Calling it again on a root already frozen panics with
// ErrAlreadyFrozen — the same write-once discipline as Change's setOnce
// (errors.go), applied to metadata instead of a single slot.
//
// Complexity: O(N) time and space for N total nodes.
func Freeze(roots []*Node) {
	for _, r := range roots {
		if r.frozen {
			panic(ErrAlreadyFrozen.Error())
		}
	}

	assignDepth(roots, 0)
	assignNext(roots, nil)
	for _, r := range roots {
		assignBottomUp(r)
	}
}

// assignDepth walks a sibling sequence, stamping ancestor depth on every
// node and recursing into list children at depth+1.
func assignDepth(siblings []*Node, depth int) {
	stack := make([]struct {
		nodes []*Node
		depth int
	}, 0, 8)
	stack = append(stack, struct {
		nodes []*Node
		depth int
	}{siblings, depth})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range top.nodes {
			n.depth = top.depth
			if n.kind == KindList && len(n.children) > 0 {
				stack = append(stack, struct {
					nodes []*Node
					depth int
				}{n.children, top.depth + 1})
			}
		}
	}
}

// assignNext wires the preorder-successor link across a sibling sequence.
// fallback is the node reached after stepping over the *last* sibling —
// i.e. this sequence's own "uncle". Each list's children are threaded
// with the list's own next as their fallback, so the last descendant's
// next correctly steps all the way back out to the list's successor.
//
// Each frame's next-assignment is independent of every other frame's, so
// processing order across frames doesn't matter; only the stack shape
// (not recursion) does.
func assignNext(siblings []*Node, fallback *Node) {
	type frame struct {
		nodes    []*Node
		fallback *Node
	}

	stack := make([]frame, 0, 8)
	stack = append(stack, frame{siblings, fallback})

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i, n := range top.nodes {
			var after *Node
			if i+1 < len(top.nodes) {
				after = top.nodes[i+1]
			} else {
				after = top.fallback
			}
			n.next = after
			if n.kind == KindList && len(n.children) > 0 {
				stack = append(stack, frame{n.children, after})
			}
		}
	}
}

// assignBottomUp computes descendant count, content hash, and first/last
// line for n and its entire subtree, marking each node frozen.
//
// It builds the postorder (children-before-parent) visit sequence with
// the standard two-stack technique — push n, then repeatedly pop a node,
// append it to the output list, and push its own not-yet-frozen children
// — which yields the reverse of postorder; walking that list back to
// front then finalises every node after its children, exactly as the
// single-pass recursive version would, without recursing.
func assignBottomUp(n *Node) {
	toVisit := []*Node{n}
	var reverseOrder []*Node

	for len(toVisit) > 0 {
		cur := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		reverseOrder = append(reverseOrder, cur)

		if cur.kind == KindList && !cur.frozen {
			toVisit = append(toVisit, cur.children...)
		}
	}

	for i := len(reverseOrder) - 1; i >= 0; i-- {
		finalizeNode(reverseOrder[i])
	}
}

// finalizeNode computes one node's own metadata from its already-frozen
// children (finalizeNode is only ever called in postorder, so every
// child has already run). A node that is already frozen is left as it
// is: its cached values are kept rather than recomputed.
func finalizeNode(n *Node) {
	if n.frozen {
		return
	}

	var descendants int
	var hash uint64
	var first, last int

	switch n.kind {
	case KindAtom:
		hash = hashString(n.content)
		first, last = n.firstLine, n.lastLine
	case KindList:
		hash = hashString(n.openContent)
		first, last = n.openLine, n.openLine
		if n.closeLine < first {
			first = n.closeLine
		}
		if n.closeLine > last {
			last = n.closeLine
		}

		for _, c := range n.children {
			descendants += 1 + c.descendantCount
			hash = combineHash(hash, c.contentHash)
			if c.firstLine < first {
				first = c.firstLine
			}
			if c.lastLine > last {
				last = c.lastLine
			}
		}
		hash = combineHash(hash, hashString(n.closeContent))
	}

	n.descendantCount = descendants
	n.contentHash = hash
	n.firstLine = first
	n.lastLine = last
	n.frozen = true
}
