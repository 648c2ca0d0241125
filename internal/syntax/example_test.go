package syntax_test

import (
	"fmt"

	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

// Example builds a tiny two-node list, freezes it, and shows that the
// preorder-next link steps over the list's own subtree.
func Example() {
	a := syntax.NewArena()
	one := a.NewAtom("1", 1, false)
	two := a.NewAtom("2", 1, false)
	list := a.NewList("[", 0, []*syntax.Node{one, two}, "]", 2)

	syntax.Freeze([]*syntax.Node{list})

	fmt.Println(list.DescendantCount())
	fmt.Println(two.Next() == nil)
	// Output:
	// 2
	// true
}
