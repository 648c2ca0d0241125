package syntax

// Arena owns every Node allocated for one side of a diff (one parsed
// file). It assigns each Node a stable, arena-local id and keeps the
// nodes alive for the lifetime of the diff, exactly as spec §3's
// "Lifecycles" describes: nodes are allocated once per input and live
// until the diff completes.
//
// Arena itself holds no cross-node invariants (parent/child wiring is the
// caller's responsibility via NewList); it exists purely to centralise id
// assignment, matching the "arena-index trees" design note in spec §9 —
// nodes reference each other by pointer into a single owning allocator
// rather than forming cyclic parent/child ownership.
//
// Arena is not safe for concurrent use; build one tree per goroutine.
type Arena struct {
	nodes  []*Node
	nextID uint64
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len returns the number of nodes allocated so far.
func (a *Arena) Len() int { return len(a.nodes) }

// Nodes returns every node allocated by this arena, in allocation order.
// The slice is owned by the Arena; callers must not mutate it.
func (a *Arena) Nodes() []*Node { return a.nodes }

// NewAtom allocates and returns a leaf Atom node with the given content,
// source line, and comment flag. The returned node's metadata (depth,
// next, descendant count, hash, line span) is unset until Freeze runs.
func (a *Arena) NewAtom(content string, line int, isComment bool) *Node {
	n := &Node{
		id:        a.allocID(),
		kind:      KindAtom,
		content:   content,
		isComment: isComment,
		firstLine: line,
		lastLine:  line,
	}
	a.nodes = append(a.nodes, n)
	return n
}

// NewList allocates and returns a List node with the given delimiters and
// children. It sets each child's parent pointer to the new node. Panics
// (ErrEmptyOpenOrClose) if either delimiter is the empty string — lists
// always carry concrete delimiter text, including a synthetic "UNCLOSED"
// close token for unterminated input (spec §6).
func (a *Arena) NewList(openContent string, openLine int, children []*Node, closeContent string, closeLine int) *Node {
	if openContent == "" || closeContent == "" {
		panic(ErrEmptyOpenOrClose.Error())
	}

	n := &Node{
		id:           a.allocID(),
		kind:         KindList,
		openContent:  openContent,
		openLine:     openLine,
		closeContent: closeContent,
		closeLine:    closeLine,
		children:     children,
	}
	for _, c := range children {
		c.parent = n
	}
	a.nodes = append(a.nodes, n)
	return n
}

// allocID returns the next arena-local node id.
func (a *Arena) allocID() uint64 {
	id := a.nextID
	a.nextID++
	return id
}
