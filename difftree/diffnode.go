package difftree

import "github.com/astcore/astcore/tree"

// DiffNode wraps one original node and the ordered list of child slots
// underneath it. Each slot is either an entry carrying an action for an
// original child (None/Replace/Delete), or a pure insertion with no
// original counterpart.
type DiffNode struct {
	original *tree.Node
	head     *entry
	tail     *entry

	// frontFrontier is the entry after which the next front-insertion at
	// this node lands, preserving call order across repeated front
	// insertions. Nil means "no front insertion yet, land at head".
	frontFrontier *entry
}

// entry is one child slot in a DiffNode's list.
type entry struct {
	owner *DiffNode
	prev  *entry
	next  *entry

	// original/child are set for a slot that corresponds to a pre-edit
	// child. child is that child wrapped in its own DiffNode so edits can
	// reach arbitrarily deep.
	original *tree.Node
	child    *DiffNode

	// inserted is set instead, for a slot that is a pure insertion.
	inserted *tree.Node

	action  Action
	payload *tree.Node

	// frontier is the entry after which the next insertion anchored at
	// this slot lands, so repeated insertAfter(x) calls accumulate in
	// call order rather than reversing.
	frontier *entry
}

// Original returns the pre-edit node this DiffNode wraps.
func (dn *DiffNode) Original() *tree.Node { return dn.original }

// Children returns the wrapped pre-edit children, in original order,
// skipping pure insertion slots (which have no original counterpart).
func (dn *DiffNode) Children() []*DiffNode {
	var out []*DiffNode

	for e := dn.head; e != nil; e = e.next {
		if e.original != nil {
			out = append(out, e.child)
		}
	}

	return out
}

// ActionAt reports the action recorded against child (one of dn's pre-edit
// children), if any.
func (dn *DiffNode) ActionAt(child *tree.Node) (Action, *tree.Node, bool) {
	for e := dn.head; e != nil; e = e.next {
		if e.original == child {
			return e.action, e.payload, true
		}
	}

	return ActionNone, nil, false
}

// SlotKind distinguishes a Slot that wraps a pre-edit child from one that
// is a pure insertion.
type SlotKind int

// SlotKind values.
const (
	SlotOriginal SlotKind = iota
	SlotInsert
)

// Slot is one child-list entry exposed for consumers (such as the patch
// package) that need to walk a DiffNode's slots in their exact recorded
// order, including interspersed insertions.
type Slot struct {
	Kind     SlotKind
	Original *tree.Node // set for SlotOriginal
	Child    *DiffNode  // set for SlotOriginal
	Action   Action     // set for SlotOriginal
	Payload  *tree.Node // Replace payload for SlotOriginal, or the inserted node for SlotInsert
}

// Slots returns every child-list entry of dn, in order, including
// insertions interspersed at their recorded positions.
func (dn *DiffNode) Slots() []Slot {
	var out []Slot

	for e := dn.head; e != nil; e = e.next {
		if e.inserted != nil {
			out = append(out, Slot{Kind: SlotInsert, Payload: e.inserted})
			continue
		}

		out = append(out, Slot{
			Kind:     SlotOriginal,
			Original: e.original,
			Child:    e.child,
			Action:   e.action,
			Payload:  e.payload,
		})
	}

	return out
}

// Before reconstructs the original, pre-edit subtree. Because the overlay
// never mutates the wrapped Node, this is simply the original node itself —
// no rebuild needed.
func (dn *DiffNode) Before() *tree.Node { return dn.original }

// After materialises a new tree with every recorded edit applied: deletions
// are dropped, replacements substitute their payload, insertions are spliced
// in at their recorded position, and unedited children recurse.
//
// After can fail if an edit makes the node's children incompatible with its
// type's allocator (spec §7, IncompatibleTransform): e.g. deleting a
// required child.
func (dn *DiffNode) After() (*tree.Node, error) {
	var children []*tree.Node

	for e := dn.head; e != nil; e = e.next {
		if e.inserted != nil {
			children = append(children, e.inserted)
			continue
		}

		switch e.action {
		case ActionDelete:
			continue
		case ActionReplace:
			children = append(children, e.payload)
		default:
			c, err := e.child.After()
			if err != nil {
				return nil, err
			}

			children = append(children, c)
		}
	}

	b := dn.original.Type().NewBuilder()
	b.SetFragment(dn.original.Fragment())

	if !b.SetData(dn.original.Data()) {
		return nil, &tree.ValidationError{Type: dn.original.Type().Name, Reason: "after: data rejected by builder"}
	}

	if !b.SetChildrenList(children) {
		return nil, &tree.ValidationError{Type: dn.original.Type().Name, Reason: "after: children rejected by allocator"}
	}

	return b.CreateNode()
}

// ActionList flattens every non-trivial edit recorded under dn, pre-order,
// suitable for round-trip serialisation.
func (dn *DiffNode) ActionList() []ActionRecord {
	var out []ActionRecord
	dn.collect(&out)

	return out
}

func (dn *DiffNode) collect(out *[]ActionRecord) {
	for e := dn.head; e != nil; e = e.next {
		if e.inserted != nil {
			anchor := dn.original
			if e.prev != nil {
				anchor = e.prev.original
				if e.prev.inserted != nil {
					anchor = e.prev.inserted
				}
			}

			*out = append(*out, ActionRecord{
				Parent:  dn.original,
				Action:  ActionInsert,
				Payload: e.inserted,
				Anchor:  anchor,
			})

			continue
		}

		if e.action != ActionNone {
			*out = append(*out, ActionRecord{
				Parent:   dn.original,
				Original: e.original,
				Action:   e.action,
				Payload:  e.payload,
			})
		}

		if e.action == ActionNone {
			e.child.collect(out)
		}
	}
}
