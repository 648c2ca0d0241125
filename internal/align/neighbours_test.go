package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

func TestNeighbours_EndVertexHasNone(t *testing.T) {
	assert.Empty(t, neighbours(vertex{}))
}

func TestNeighbours_UnchangedNodeOnlyWhenEqualContent(t *testing.T) {
	la := syntax.NewArena()
	foo := la.NewAtom("foo", 0, false)
	syntax.Freeze([]*syntax.Node{foo})

	ra := syntax.NewArena()
	bar := ra.NewAtom("bar", 0, false)
	syntax.Freeze([]*syntax.Node{bar})

	cands := neighbours(vertex{lhs: foo, rhs: bar})
	for _, c := range cands {
		assert.NotEqual(t, edgeUnchangedNode, c.edge.kind)
	}
}

func TestNeighbours_NovelDelimiterUpdatesPrevNovelToOpenLine(t *testing.T) {
	a := syntax.NewArena()
	child := a.NewAtom("x", 5, false)
	list := a.NewList("[", 7, []*syntax.Node{child}, "]", 9)
	syntax.Freeze([]*syntax.Node{list})

	cands := neighbours(vertex{lhs: list})
	require.NotEmpty(t, cands)

	var found bool
	for _, c := range cands {
		if c.edge.kind == edgeNovelDelimiterLHS {
			found = true
			require.NotNil(t, c.next.lhsPrevNovel)
			assert.Equal(t, 7, *c.next.lhsPrevNovel)
			assert.Same(t, child, c.next.lhs)
		}
	}
	assert.True(t, found)
}

func TestNeighbours_NovelTreeOnlyAboveThreshold(t *testing.T) {
	a := syntax.NewArena()
	children := make([]*syntax.Node, 0, novelTreeThreshold)
	for i := 0; i < novelTreeThreshold; i++ {
		children = append(children, a.NewAtom("x", i, false))
	}
	list := a.NewList("[", 0, children, "]", novelTreeThreshold+1)
	syntax.Freeze([]*syntax.Node{list})

	cands := neighbours(vertex{lhs: list})
	for _, c := range cands {
		assert.NotEqual(t, edgeNovelTreeLHS, c.edge.kind, "exactly novelTreeThreshold descendants must not qualify")
	}
}
