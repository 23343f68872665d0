// Package extnode provides a read-only overlay over [tree.Node] that adds
// parent/sibling/index links and a memoised absolute hash, for algorithms
// that need to walk upward or sideways through an otherwise strictly
// downward node DAG.
//
// Parent/sibling links live only on this overlay (spec design note §9):
// the underlying Node is never mutated and never points back to its
// parent, so a single Node can be shared by multiple wrapped views (e.g.
// two different ExtNode trees built from structurally-shared subtrees)
// without creating cycles.
package extnode

import "github.com/astcore/astcore/tree"

// ExtNode wraps a [tree.Node] with parent/sibling/index context and a
// memoised absolute hash.
type ExtNode struct {
	proto  *tree.Node
	parent *ExtNode
	index  int
	left   *ExtNode
	right  *ExtNode
	kids   []*ExtNode
	hash   uint32
}

// Create produces an ExtNode tree for root in two passes: wrappers and
// their hashes are built bottom-up (post-order), then linked top-down with
// parent/index/sibling context.
func Create(root *tree.Node) *ExtNode {
	return link(build(root), nil, 0, nil, nil)
}

// build constructs the ExtNode tree bottom-up, without parent/sibling
// context, computing each node's absolute hash along the way.
func build(n *tree.Node) *ExtNode {
	if n == nil {
		return nil
	}

	protoChildren := n.Children()
	kids := make([]*ExtNode, len(protoChildren))

	for i, c := range protoChildren {
		kids[i] = build(c)
	}

	return &ExtNode{
		proto: n,
		kids:  kids,
		hash:  tree.AbsoluteHash(n),
	}
}

// link fills in parent/index/left/right context top-down.
func link(n *ExtNode, parent *ExtNode, index int, left, right *ExtNode) *ExtNode {
	if n == nil {
		return nil
	}

	n.parent = parent
	n.index = index
	n.left = left
	n.right = right

	for i, kid := range n.kids {
		var kidLeft, kidRight *ExtNode
		if i > 0 {
			kidLeft = n.kids[i-1]
		}

		if i+1 < len(n.kids) {
			kidRight = n.kids[i+1]
		}

		link(kid, n, i, kidLeft, kidRight)
	}

	return n
}

// Prototype returns the underlying Node this wrapper views.
func (e *ExtNode) Prototype() *tree.Node {
	if e == nil {
		return nil
	}

	return e.proto
}

// Parent returns the wrapped parent, or nil at the root.
func (e *ExtNode) Parent() *ExtNode {
	if e == nil {
		return nil
	}

	return e.parent
}

// ParentPrototype returns the parent's underlying Node, or nil at the root.
func (e *ExtNode) ParentPrototype() *tree.Node {
	return e.Parent().Prototype()
}

// Left returns the previous sibling, or nil if e is the first child (or the
// root).
func (e *ExtNode) Left() *ExtNode {
	if e == nil {
		return nil
	}

	return e.left
}

// LeftPrototype returns the left sibling's underlying Node, or nil.
func (e *ExtNode) LeftPrototype() *tree.Node {
	return e.Left().Prototype()
}

// Right returns the next sibling, or nil if e is the last child (or the
// root).
func (e *ExtNode) Right() *ExtNode {
	if e == nil {
		return nil
	}

	return e.right
}

// RightPrototype returns the right sibling's underlying Node, or nil.
func (e *ExtNode) RightPrototype() *tree.Node {
	return e.Right().Prototype()
}

// Index returns e's position within its parent's children (0 at the root).
func (e *ExtNode) Index() int {
	if e == nil {
		return -1
	}

	return e.index
}

// ExtChild returns the i-th wrapped child, or nil if out of range.
func (e *ExtNode) ExtChild(i int) *ExtNode {
	if e == nil || i < 0 || i >= len(e.kids) {
		return nil
	}

	return e.kids[i]
}

// ExtChildren returns all wrapped children in order.
func (e *ExtNode) ExtChildren() []*ExtNode {
	if e == nil {
		return nil
	}

	return e.kids
}

// AbsoluteHash returns the memoised absolute hash computed when this
// wrapper was built.
func (e *ExtNode) AbsoluteHash() uint32 {
	if e == nil {
		return 0
	}

	return e.hash
}

// Forwarded Node operations, so algorithms can treat an ExtNode like a Node
// without unwrapping it first.

// Type forwards to the prototype.
func (e *ExtNode) Type() *tree.Type { return e.Prototype().Type() }

// Data forwards to the prototype.
func (e *ExtNode) Data() string { return e.Prototype().Data() }
