package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

// buildSample builds: [ (1 2) 3 ] as a two-level tree with a top-level
// sibling atom "top" before it, to exercise multi-root forests.
func buildSample(a *syntax.Arena) (forest []*syntax.Node, inner, outer *syntax.Node) {
	one := a.NewAtom("1", 1, false)
	two := a.NewAtom("2", 1, false)
	inner = a.NewList("(", 1, []*syntax.Node{one, two}, ")", 1)
	three := a.NewAtom("3", 2, false)
	outer = a.NewList("[", 0, []*syntax.Node{inner, three}, "]", 3)
	top := a.NewAtom("top", -1, false)
	return []*syntax.Node{top, outer}, inner, outer
}

func TestFreeze_Depth(t *testing.T) {
	a := syntax.NewArena()
	forest, inner, outer := buildSample(a)
	syntax.Freeze(forest)

	assert.Equal(t, 0, forest[0].AncestorDepth()) // top
	assert.Equal(t, 0, outer.AncestorDepth())
	assert.Equal(t, 1, inner.AncestorDepth())
	assert.Equal(t, 2, inner.Children()[0].AncestorDepth())
}

func TestFreeze_DescendantCount(t *testing.T) {
	a := syntax.NewArena()
	forest, inner, outer := buildSample(a)
	syntax.Freeze(forest)

	assert.Equal(t, 0, forest[0].DescendantCount())
	assert.Equal(t, 2, inner.DescendantCount())  // one, two
	assert.Equal(t, 4, outer.DescendantCount())  // inner + one + two + three
}

func TestFreeze_NextLinksAcrossForestAndSubtree(t *testing.T) {
	a := syntax.NewArena()
	forest, inner, outer := buildSample(a)
	syntax.Freeze(forest)

	top := forest[0]
	one := inner.Children()[0]
	two := inner.Children()[1]
	three := outer.Children()[1]

	assert.Same(t, outer, top.Next(), "top-level siblings are threaded")
	assert.Same(t, inner, outer.FirstChildOrNext())
	assert.Same(t, two, one.Next())
	assert.Same(t, three, two.Next(), "last child of inner steps out to outer's next child")
	assert.Nil(t, three.Next(), "last node in forest has no successor")
}

func TestFreeze_ContentHashStableAndOrderSensitive(t *testing.T) {
	a1 := syntax.NewArena()
	f1, _, o1 := buildSample(a1)
	syntax.Freeze(f1)

	a2 := syntax.NewArena()
	f2, _, o2 := buildSample(a2)
	syntax.Freeze(f2)

	assert.Equal(t, o1.ContentHash(), o2.ContentHash(), "identical structure hashes identically")
	assert.True(t, syntax.EqualContent(o1, o2))

	// Swap the order of the two children of "inner" on one side: the
	// parent hash must change even though the multiset of children is
	// the same, since sibling order is significant.
	a3 := syntax.NewArena()
	one := a3.NewAtom("2", 1, false)
	two := a3.NewAtom("1", 1, false)
	reordered := a3.NewList("(", 1, []*syntax.Node{one, two}, ")", 1)
	syntax.Freeze([]*syntax.Node{reordered})

	original := o1.Children()[0]
	assert.NotEqual(t, original.ContentHash(), reordered.ContentHash())
	assert.False(t, syntax.EqualContent(original, reordered))
}

func TestFreeze_LineSpan(t *testing.T) {
	a := syntax.NewArena()
	_, inner, outer := buildSample(a)
	syntax.Freeze([]*syntax.Node{outer})

	assert.Equal(t, 1, inner.FirstLine())
	assert.Equal(t, 1, inner.LastLine())
	assert.Equal(t, 0, outer.FirstLine())
	assert.Equal(t, 3, outer.LastLine())
}
