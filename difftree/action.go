// Package difftree implements the difference-tree overlay: a structural
// edit log layered on top of an immutable [tree.Node], from which both the
// "before" (original) and "after" (edited) plain trees can be recovered.
//
// The overlay never touches the wrapped Node: Before() is simply the
// original, untouched subtree (immutability makes that free), while After()
// rebuilds a new tree by walking the edit log and materialising insertions,
// replacements and deletions in place, grounded on the teacher's own
// before/after change-detection shape (pkg/uast/types.go's DetectChanges)
// and on deepdiff's tagged-delta patch application.
package difftree

import "github.com/astcore/astcore/tree"

// Action is the tagged union of edits that can apply to a child slot.
type Action int

// Action values.
const (
	ActionNone Action = iota
	ActionInsert
	ActionReplace
	ActionDelete
)

// String renders the action for diagnostics.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionInsert:
		return "Insert"
	case ActionReplace:
		return "Replace"
	case ActionDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// ActionRecord is one flat entry in an [ActionList], suitable for
// round-trip serialisation (spec §4.F).
type ActionRecord struct {
	// Parent is the original node whose child list this record concerns.
	Parent *tree.Node
	// Original is the pre-edit child this record concerns. Nil for Insert
	// records, which have no original counterpart.
	Original *tree.Node
	Action   Action
	// Payload is the new node for Insert/Replace records, nil otherwise.
	Payload *tree.Node
	// Anchor is the node the insertion is placed after (or the parent
	// itself, for a front insertion). Only meaningful for Insert records.
	Anchor *tree.Node
}
