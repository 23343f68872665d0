package difftree

import "github.com/astcore/astcore/tree"

// Insertion describes where a new node should be spliced into the tree:
// immediately after After, inside Parent's child list. Parent is required
// when After == Parent, meaning "insert at the front of Parent's children"
// (there is no preceding sibling to anchor on).
type Insertion struct {
	Node   *tree.Node
	After  *tree.Node
	Parent *tree.Node
}

// DiffTreeBuilder accumulates edits over an immutable original tree.
// Builders are single-owner: concurrent edits from multiple goroutines are
// not supported (spec §6).
type DiffTreeBuilder struct {
	root *DiffNode

	// selfOf maps every original node (including root) to the DiffNode
	// that wraps it, for resolving Insertion.Parent and front-insertion
	// targets.
	selfOf map[*tree.Node]*DiffNode

	// slotOf maps every original node to the entry representing it within
	// its parent's slot list, for resolving replace/delete/insert-after
	// targets. Root has no slot (it has no parent).
	slotOf map[*tree.Node]*entry

	// anchorOf maps any node usable as an insertion anchor — original or
	// previously inserted — to its entry, so later insertions can chain
	// off earlier ones.
	anchorOf map[*tree.Node]*entry
}

// New builds a DiffTreeBuilder over root. The original tree is never
// mutated; all edits live in the overlay.
func New(root *tree.Node) *DiffTreeBuilder {
	b := &DiffTreeBuilder{
		selfOf:   make(map[*tree.Node]*DiffNode),
		slotOf:   make(map[*tree.Node]*entry),
		anchorOf: make(map[*tree.Node]*entry),
	}
	b.root = b.wrap(root)

	return b
}

// Root returns the DiffNode wrapping the original root, reflecting every
// edit applied so far.
func (b *DiffTreeBuilder) Root() *DiffNode { return b.root }

// Contains reports whether node is one of the original tree's nodes, root
// included, by identity; this is what MakeHole checks. ReplaceNode and
// DeleteNode reject the root (it has no slot), and previously inserted
// nodes are valid insertion anchors although Contains reports false for
// them.
func (b *DiffTreeBuilder) Contains(node *tree.Node) bool {
	_, ok := b.selfOf[node]
	return ok
}

func (b *DiffTreeBuilder) wrap(n *tree.Node) *DiffNode {
	dn := &DiffNode{original: n}
	b.selfOf[n] = dn

	var prev *entry

	for _, c := range n.Children() {
		childDN := b.wrap(c)
		e := &entry{owner: dn, original: c, child: childDN, action: ActionNone}
		e.frontier = e

		if prev == nil {
			dn.head = e
		} else {
			prev.next = e
			e.prev = prev
		}

		prev = e

		b.slotOf[c] = e
		b.anchorOf[c] = e
	}

	dn.tail = prev

	return dn
}

// InsertNode splices ins.Node into the tree as a new, unedited slot. It
// reports false if After cannot be resolved to a known anchor (a
// ReferenceNotFound condition, recovered locally per spec §7).
//
// Two insertions anchored at the same node preserve call order: the first
// call lands immediately after the anchor, and the second lands after the
// first, rather than the two swapping places.
func (b *DiffTreeBuilder) InsertNode(ins Insertion) bool {
	if ins.After == ins.Parent {
		owner, ok := b.selfOf[ins.Parent]
		if !ok {
			return false
		}

		e := &entry{owner: owner, inserted: ins.Node}
		e.frontier = e

		if owner.frontFrontier == nil {
			b.spliceAtHead(owner, e)
		} else {
			b.spliceAfter(owner.frontFrontier, e)
		}

		owner.frontFrontier = e
		b.anchorOf[ins.Node] = e

		return true
	}

	anchor, ok := b.anchorOf[ins.After]
	if !ok {
		return false
	}

	frontier := anchor.frontier
	e := &entry{owner: frontier.owner, inserted: ins.Node}
	e.frontier = e

	b.spliceAfter(frontier, e)
	anchor.frontier = e
	b.anchorOf[ins.Node] = e

	return true
}

// ReplaceNode records that old should be substituted by repl in the
// resulting after() tree. It reports false if old cannot be found, or if
// old's slot was already deleted (spec §4.F stacking rule: delete then any
// further edit on the same slot is rejected).
func (b *DiffTreeBuilder) ReplaceNode(old, repl *tree.Node) bool {
	e, ok := b.slotOf[old]
	if !ok {
		return false
	}

	if e.action == ActionDelete {
		return false
	}

	e.action = ActionReplace
	e.payload = repl

	return true
}

// DeleteNode records that victim should be dropped from the resulting
// after() tree. It reports false if victim cannot be found, or if its slot
// was already deleted.
func (b *DiffTreeBuilder) DeleteNode(victim *tree.Node) bool {
	e, ok := b.slotOf[victim]
	if !ok {
		return false
	}

	if e.action == ActionDelete {
		return false
	}

	e.action = ActionDelete
	e.payload = nil

	return true
}

func (b *DiffTreeBuilder) spliceAtHead(owner *DiffNode, e *entry) {
	e.next = owner.head

	if owner.head != nil {
		owner.head.prev = e
	} else {
		owner.tail = e
	}

	owner.head = e
}

func (b *DiffTreeBuilder) spliceAfter(target, e *entry) {
	owner := target.owner

	e.prev = target
	e.next = target.next

	if target.next != nil {
		target.next.prev = e
	} else {
		owner.tail = e
	}

	target.next = e
}
