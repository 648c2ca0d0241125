package lang

import (
	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

// unclosedCloseContent is the synthetic close-delimiter text used to
// repair a list left open at end of input (spec §6). It can never
// collide with a real close pattern's matched text, since descriptor
// authors write concrete punctuation, not identifier-shaped text, for
// delimiters.
const unclosedCloseContent = "UNCLOSED"

// frame is one currently-open list while building the forest: the token
// that opened it, the children accumulated so far, and the line of the
// most recent token appended to it. lastLine is tracked independently of
// the Node metadata because List nodes don't know their own line span
// until syntax.Freeze runs, which happens only once, after the whole
// forest is assembled — it's what lets an unclosed list be repaired with
// a plausible close line instead of an arbitrary one.
type frame struct {
	openContent string
	openLine    int
	lastLine    int
	children    []*syntax.Node
}

// Build lexes src with d's regex patterns and assembles the result into a
// frozen syntax-node forest (spec §2/§6). The returned forest is ready to
// pass directly to align.Align.
//
// A list left open at end of input is repaired with a synthetic
// "UNCLOSED" close token rather than failing the build (spec §6);
// repaired reports whether that happened, for callers that want to warn
// about malformed input without treating it as fatal.
func Build(d Descriptor, src string) (forest []*syntax.Node, repaired bool, err error) {
	compiled, err := compile(d)
	if err != nil {
		return nil, false, err
	}

	arena := syntax.NewArena()
	tokens := lex(compiled, src)

	var stack []frame
	var roots []*syntax.Node

	appendNode := func(n *syntax.Node, atLine int) {
		if len(stack) == 0 {
			roots = append(roots, n)
			return
		}
		top := len(stack) - 1
		stack[top].children = append(stack[top].children, n)
		stack[top].lastLine = atLine
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokenAtom:
			appendNode(arena.NewAtom(tok.content, tok.line, false), tok.line)
		case tokenComment:
			appendNode(arena.NewAtom(tok.content, tok.line, true), tok.line)
		case tokenOpen:
			stack = append(stack, frame{openContent: tok.content, openLine: tok.line, lastLine: tok.line})
		case tokenClose:
			if len(stack) == 0 {
				// A close token with nothing open to close: the
				// descriptor's patterns overlap with this language's
				// actual grammar in a way we can't repair structurally,
				// so fall back to treating it as ordinary text.
				appendNode(arena.NewAtom(tok.content, tok.line, false), tok.line)
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			appendNode(arena.NewList(top.openContent, top.openLine, top.children, tok.content, tok.line), tok.line)
		}
	}

	// Repair any lists still open at end of input, innermost first, so
	// each repaired list becomes a well-formed child of the one above it.
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		list := arena.NewList(top.openContent, top.openLine, top.children, unclosedCloseContent, top.lastLine)
		repaired = true
		appendNode(list, top.lastLine)
	}

	syntax.Freeze(roots)
	return roots, repaired, nil
}
