// Package treealgo provides traversal, structural-equivalence detection and
// identity-based replacement over [tree.Node] trees. All traversal orders
// are deterministic pre-order, left-to-right (spec §5), implemented with
// explicit stacks rather than recursion so arbitrarily deep trees don't
// exhaust the goroutine stack.
package treealgo

import "github.com/astcore/astcore/tree"

// FindFirstFromRoot performs a pre-order traversal starting at root and
// returns the first node for which pred returns true, or nil.
func FindFirstFromRoot(root *tree.Node, pred func(*tree.Node) bool) *tree.Node {
	if root == nil {
		return nil
	}

	stack := []*tree.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pred(n) {
			return n
		}

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return nil
}

// VisitPreOrder calls fn for every node in root's subtree, pre-order,
// left-to-right.
func VisitPreOrder(root *tree.Node, fn func(*tree.Node)) {
	if root == nil {
		return
	}

	stack := []*tree.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(n)

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}
