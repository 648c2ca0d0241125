package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

func TestMarkUnchangedDeep(t *testing.T) {
	la := syntax.NewArena()
	l1 := la.NewAtom("1", 1, false)
	l2 := la.NewAtom("2", 1, false)
	lhs := la.NewList("[", 0, []*syntax.Node{l1, l2}, "]", 2)

	ra := syntax.NewArena()
	r1 := ra.NewAtom("1", 10, false)
	r2 := ra.NewAtom("2", 10, false)
	rhs := ra.NewList("[", 9, []*syntax.Node{r1, r2}, "]", 11)

	syntax.Freeze([]*syntax.Node{lhs})
	syntax.Freeze([]*syntax.Node{rhs})

	syntax.MarkUnchangedDeep(lhs, rhs)

	for _, pair := range [][2]*syntax.Node{{lhs, rhs}, {l1, r1}, {l2, r2}} {
		a, b := pair[0], pair[1]
		assert.Equal(t, syntax.ChangeUnchanged, a.Change().Label)
		assert.Same(t, b, a.Change().Pair)
		assert.Equal(t, syntax.ChangeUnchanged, b.Change().Label)
		assert.Same(t, a, b.Change().Pair)
	}
}

func TestMarkNovelDeep(t *testing.T) {
	a := syntax.NewArena()
	c1 := a.NewAtom("1", 1, false)
	c2 := a.NewAtom("2", 1, false)
	list := a.NewList("[", 0, []*syntax.Node{c1, c2}, "]", 2)
	syntax.Freeze([]*syntax.Node{list})

	list.MarkNovelDeep()

	assert.Equal(t, syntax.ChangeNovel, list.Change().Label)
	assert.Equal(t, syntax.ChangeNovel, c1.Change().Label)
	assert.Equal(t, syntax.ChangeNovel, c2.Change().Label)
}

func TestSetOnce_PanicsOnDoubleWrite(t *testing.T) {
	a := syntax.NewArena()
	n := a.NewAtom("x", 0, false)
	syntax.Freeze([]*syntax.Node{n})

	n.MarkNovelShallow()
	assert.Panics(t, func() { n.MarkNovelShallow() })
	assert.Panics(t, func() { n.MarkUnchangedShallow(n) })
}

func TestMarkUnchangedShallow_DoesNotRecurse(t *testing.T) {
	la := syntax.NewArena()
	l1 := la.NewAtom("1", 1, false)
	lhs := la.NewList("[", 0, []*syntax.Node{l1}, "]", 2)
	ra := syntax.NewArena()
	r1 := ra.NewAtom("1", 1, false)
	rhs := ra.NewList("[", 0, []*syntax.Node{r1}, "]", 2)
	syntax.Freeze([]*syntax.Node{lhs})
	syntax.Freeze([]*syntax.Node{rhs})

	lhs.MarkUnchangedShallow(rhs)
	rhs.MarkUnchangedShallow(lhs)

	assert.Equal(t, syntax.ChangeUnchanged, lhs.Change().Label)
	assert.Equal(t, syntax.ChangeUnset, l1.Change().Label, "children are untouched by a shallow mark")
}
