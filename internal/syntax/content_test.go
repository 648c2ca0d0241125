package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

func TestEqualContent_NilHandling(t *testing.T) {
	a := syntax.NewArena()
	n := a.NewAtom("x", 0, false)
	syntax.Freeze([]*syntax.Node{n})

	assert.True(t, syntax.EqualContent(nil, nil))
	assert.False(t, syntax.EqualContent(n, nil))
	assert.False(t, syntax.EqualContent(nil, n))
}

func TestEqualContent_DifferentContent(t *testing.T) {
	a := syntax.NewArena()
	foo := a.NewAtom("foo", 0, false)
	bar := a.NewAtom("bar", 0, false)
	syntax.Freeze([]*syntax.Node{foo, bar})

	assert.False(t, syntax.EqualContent(foo, bar))
}

func TestEqualContent_DifferentDelimitersSameChildren(t *testing.T) {
	la := syntax.NewArena()
	lc := la.NewAtom("foo", 1, false)
	lhs := la.NewList("(", 0, []*syntax.Node{lc}, ")", 2)

	ra := syntax.NewArena()
	rc := ra.NewAtom("foo", 1, false)
	rhs := ra.NewList("{", 0, []*syntax.Node{rc}, "}", 2)

	syntax.Freeze([]*syntax.Node{lhs})
	syntax.Freeze([]*syntax.Node{rhs})

	assert.False(t, syntax.EqualContent(lhs, rhs), "differing delimiters are never equal, even with identical children")
}
