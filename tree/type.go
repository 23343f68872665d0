package tree

import "slices"

// ChildDescriptor encodes one expected child slot: the group name a child
// must belong to, and whether the slot is optional.
type ChildDescriptor struct {
	Group    string
	Optional bool
}

// Type describes a node class: a unique name, the ordered child slots it
// expects, a hierarchy of group names (most specific first, used by
// [Type.BelongsToGroup]), a map of string properties, and a factory that
// produces a fresh [Builder] for this type.
//
// AllowTrailing permits a builder's SetChildrenList to accept children past
// the last descriptor instead of rejecting them (spec default: reject).
type Type struct {
	Name          string
	Descriptors   []ChildDescriptor
	Hierarchy     []string
	Properties    map[string]string
	AllowTrailing bool
	NewBuilder    func() Builder
}

// BelongsToGroup reports whether name occurs in the type's hierarchy list,
// i.e. whether t is-a name.
func (t *Type) BelongsToGroup(name string) bool {
	if t == nil {
		return false
	}

	return slices.Contains(t.Hierarchy, name)
}

// Property returns a named property and whether it was present.
func (t *Type) Property(name string) (string, bool) {
	if t == nil || t.Properties == nil {
		return "", false
	}

	v, ok := t.Properties[name]

	return v, ok
}
