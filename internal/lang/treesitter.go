package lang

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"

	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

// treeSitterGrammars maps a Descriptor's Name to the compiled grammar used
// to parse it, for descriptors declaring Backend == BackendTreeSitter.
// Only languages with a real upstream grammar belong here; anything else
// stays on BackendRegex.
var treeSitterGrammars = map[string]*sitter.Language{
	"go": golang.GetLanguage(),
}

// BuildTreeSitter parses src with d's registered tree-sitter grammar and
// converts the resulting concrete syntax tree into the same *syntax.Node
// forest shape Build produces, so internal/align never needs to know
// which backend built its input (spec §2/§6).
//
// Every tree-sitter node with named children becomes a syntax List whose
// open delimiter is the node's type name and whose close delimiter is "/"
// followed by that name; every other node becomes an Atom holding its
// full source text. Anonymous children of a List (punctuation the grammar
// tokenises but doesn't name, e.g. "(" or ",") are dropped.
func BuildTreeSitter(ctx context.Context, d Descriptor, src []byte) (forest []*syntax.Node, err error) {
	grammar, ok := treeSitterGrammars[d.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTreeSitterUnavailable, d.Name)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("lang: tree-sitter parse: %w", err)
	}
	defer tree.Close()

	arena := syntax.NewArena()
	root := tree.RootNode()

	converted := make([]*syntax.Node, 0, root.ChildCount())
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		converted = append(converted, convertNode(arena, child, src))
	}

	syntax.Freeze(converted)
	return converted, nil
}

// convertNode recursively turns one tree-sitter node and its named
// descendants into a *syntax.Node, preserving source line numbers via
// tree-sitter's 0-based StartPoint/EndPoint rows converted to this
// package's 1-based convention (matching lex's line numbering).
func convertNode(arena *syntax.Arena, n *sitter.Node, src []byte) *syntax.Node {
	namedChildren := make([]*sitter.Node, 0, n.ChildCount())
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && c.IsNamed() {
			namedChildren = append(namedChildren, c)
		}
	}

	if len(namedChildren) == 0 {
		line := int(n.StartPoint().Row) + 1
		return arena.NewAtom(n.Content(src), line, n.Type() == "comment")
	}

	children := make([]*syntax.Node, 0, len(namedChildren))
	for _, c := range namedChildren {
		children = append(children, convertNode(arena, c, src))
	}

	openLine := int(n.StartPoint().Row) + 1
	closeLine := int(n.EndPoint().Row) + 1
	return arena.NewList(n.Type(), openLine, children, "/"+n.Type(), closeLine)
}
