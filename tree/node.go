// Package tree provides the immutable typed node model: [Node], [Type],
// [Builder] and the allocator that validates a child sequence against a
// type's child descriptors.
//
// A Node is built exactly once, through a [Builder], and never mutated
// afterwards. Overlays in sibling packages (extnode, difftree, pattern) wrap
// a built Node without ever reaching back into it.
package tree

import (
	"hash/fnv"

	"github.com/astcore/astcore/fragment"
	"github.com/astcore/astcore/pkg/safeconv"
)

// Node is an immutable tree node: a type, a data payload, an ordered child
// sequence, and an optional source fragment.
type Node struct {
	typ      *Type
	data     string
	children []*Node
	frag     fragment.Fragment
}

// Type returns the node's type.
func (n *Node) Type() *Type {
	if n == nil {
		return nil
	}

	return n.typ
}

// Data returns the node's textual payload.
func (n *Node) Data() string {
	if n == nil {
		return ""
	}

	return n.data
}

// Children returns the node's children in order. The returned slice is the
// node's own backing storage: callers must not mutate it. This mirrors the
// teacher's zero-copy Node.Children field — the cost of a defensive copy on
// every read is not worth paying for a value every caller in this module
// already treats as read-only.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	return n.children
}

// Fragment returns the node's source span, or [fragment.Empty] if none was set.
func (n *Node) Fragment() fragment.Fragment {
	if n == nil {
		return fragment.Empty
	}

	return n.frag
}

// dummyType is the type of the singleton empty node, named after the
// empty-set glyph per spec.
var dummyType = &Type{
	Name:        "∅",
	Descriptors: nil,
	Hierarchy:   []string{"∅"},
}

var dummyNode = &Node{typ: dummyType}

// Dummy returns the process-wide singleton empty node: zero children, empty
// data, type name "∅".
func Dummy() *Node {
	return dummyNode
}

// IsDummy reports whether n is the Dummy singleton.
func IsDummy(n *Node) bool {
	return n == dummyNode
}

// DeepCompare reports whether a and b have the same type name, the same
// data, the same number of children, and every corresponding child pair
// deep-compares equal, recursively.
func DeepCompare(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.typ.Name != b.typ.Name || a.data != b.data {
		return false
	}

	if len(a.children) != len(b.children) {
		return false
	}

	for i := range a.children {
		if !DeepCompare(a.children[i], b.children[i]) {
			return false
		}
	}

	return true
}

// DeepClone rebuilds the subtree rooted at n via its types' builders,
// preserving fragments. It returns an error if any builder along the way
// rejects the data or children it is asked to reproduce, which would
// indicate the original tree was built against a type that has since
// changed shape.
func DeepClone(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}

	clonedChildren := make([]*Node, len(n.children))

	for i, c := range n.children {
		cloned, err := DeepClone(c)
		if err != nil {
			return nil, err
		}

		clonedChildren[i] = cloned
	}

	b := n.typ.NewBuilder()
	b.SetFragment(n.frag)

	if !b.SetData(n.data) {
		return nil, &ValidationError{Type: n.typ.Name, Reason: "data rejected during clone"}
	}

	if !b.SetChildrenList(clonedChildren) {
		return nil, &ValidationError{Type: n.typ.Name, Reason: "children rejected during clone"}
	}

	return b.CreateNode()
}

// LocalHash combines the type name and data only (not children), per spec
// §4.B.
func LocalHash(n *Node) uint32 {
	if n == nil {
		return 0
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(n.typ.Name))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(n.data))

	return h.Sum32()
}

// AbsoluteHash extends LocalHash with the ordered sequence of child absolute
// hashes, so it is equal for two nodes iff they [DeepCompare] equal
// (assuming no hash collision). The mixing function is FNV-1a folded over
// the local hash and each child hash in order, matching the order-sensitive
// mixing the spec requires.
func AbsoluteHash(n *Node) uint32 {
	if n == nil {
		return 0
	}

	h := fnv.New32a()

	local := LocalHash(n)
	writeUint32(h, local)
	writeUint32(h, safeconv.MustIntToUint32(len(n.children)))

	for _, c := range n.children {
		writeUint32(h, AbsoluteHash(c))
	}

	return h.Sum32()
}

func writeUint32(h interface{ Write([]byte) (int, error) }, v uint32) {
	buf := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
	_, _ = h.Write(buf[:])
}

// ValidationError reports why a builder rejected a Node being assembled.
type ValidationError struct {
	Type   string
	Reason string
}

func (e *ValidationError) Error() string {
	return "tree: validation failed for type " + e.Type + ": " + e.Reason
}
