package tree

// Allocate walks descriptors and children left to right (spec §4.B rule 1)
// and tags each child to the descriptor slot it satisfies. A child satisfies
// a descriptor iff its type belongs to the descriptor's group (rule 2).
// Optional descriptors may be skipped; required descriptors must be filled
// (rule 3). Children left over after all descriptors are consumed cause
// rejection unless allowTrailing is set (rule 4).
//
// This is the allocator [Builder.SetChildrenList] calls; it is exported here
// (rather than buried as a private helper) because draft and pattern
// builders need the identical rule set against their own descriptor lists.
func Allocate(descriptors []ChildDescriptor, children []*Node, allowTrailing bool) ([]*Node, bool) {
	result := make([]*Node, 0, len(children))

	childIdx := 0

	for _, desc := range descriptors {
		if childIdx < len(children) && children[childIdx].Type().BelongsToGroup(desc.Group) {
			result = append(result, children[childIdx])
			childIdx++

			continue
		}

		if !desc.Optional {
			return nil, false
		}
	}

	if childIdx < len(children) {
		if !allowTrailing {
			return nil, false
		}

		result = append(result, children[childIdx:]...)
	}

	return result, true
}
