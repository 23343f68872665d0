package tree

// Tree is a thin wrapper owning a root node.
type Tree struct {
	Root *Node
}

// New wraps root in a Tree.
func New(root *Node) *Tree {
	return &Tree{Root: root}
}
