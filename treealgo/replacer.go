package treealgo

import "github.com/astcore/astcore/tree"

// Replace searches root for an exact identity (same pointer, not merely an
// equal value) of source and returns a new tree with that node substituted
// by target, together with the child index within its immediate parent at
// which the swap occurred.
//
// If source is root itself, the result is simply target and the index is
// -1 (spec §4.E). If source cannot be found by identity, Replace returns
// ([tree.Dummy], -1) — a ReferenceNotFound condition, recovered locally per
// spec §7.
//
// The search proceeds pre-order, left to right, and stops at the first
// match. Nodes are immutable and may be shared, so the same pointer can sit
// at more than one position; only the first in pre-order is replaced.
func Replace(root, source, target *tree.Node) (*tree.Node, int) {
	if root == source {
		return target, -1
	}

	path := findIdentityPath(root, source)
	if path == nil {
		return tree.Dummy(), -1
	}

	newRoot, ok := rebuildAlongPath(root, path, target)
	if !ok {
		return tree.Dummy(), -1
	}

	return newRoot, path[len(path)-1]
}

type searchFrame struct {
	node *tree.Node
	path []int
}

// findIdentityPath returns the sequence of child indices from root down to
// (but not including) target, or nil if target is not reachable from root
// by identity.
func findIdentityPath(root, target *tree.Node) []int {
	stack := []searchFrame{{node: root, path: nil}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.path != nil && top.node == target {
			return top.path
		}

		children := top.node.Children()

		for i := len(children) - 1; i >= 0; i-- {
			childPath := append(append([]int{}, top.path...), i)
			stack = append(stack, searchFrame{node: children[i], path: childPath})
		}
	}

	return nil
}

// rebuildAlongPath walks down to the node at path and substitutes it with
// target, then rebuilds every ancestor on the way back up via its type's
// builder, preserving each ancestor's own data and fragment.
func rebuildAlongPath(node *tree.Node, path []int, target *tree.Node) (*tree.Node, bool) {
	if len(path) == 0 {
		return target, true
	}

	idx := path[0]
	children := node.Children()

	newChild, ok := rebuildAlongPath(children[idx], path[1:], target)
	if !ok {
		return nil, false
	}

	newChildren := append([]*tree.Node{}, children...)
	newChildren[idx] = newChild

	return rebuildWith(node, newChildren)
}

// rebuildWith reconstructs node with a new child list, keeping its type,
// data and fragment, via the type's builder.
func rebuildWith(node *tree.Node, children []*tree.Node) (*tree.Node, bool) {
	b := node.Type().NewBuilder()
	b.SetFragment(node.Fragment())

	if !b.SetData(node.Data()) {
		return nil, false
	}

	if !b.SetChildrenList(children) {
		return nil, false
	}

	n, err := b.CreateNode()
	if err != nil {
		return nil, false
	}

	return n, true
}
