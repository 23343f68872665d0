package tree

import "github.com/astcore/astcore/fragment"

// Builder is a one-shot assembler for a [Type]. A fresh Builder is obtained
// from a Type's NewBuilder factory; it is single-owner and must not be
// shared across goroutines (spec §5).
//
// SetData and SetChildrenList return false (ValidationFailure, recovered
// locally per spec §7) rather than an error, matching the teacher's
// NodeBuilder fluent-setter convention. CreateNode is the only path to a
// *Node and fails if the builder is not yet valid.
type Builder interface {
	// SetFragment records the node's source span. Optional.
	SetFragment(f fragment.Fragment)
	// SetData sets the node's textual payload. Returns false if the type
	// rejects the payload.
	SetData(data string) bool
	// SetChildrenList validates seq against the type's child descriptors via
	// [Allocate] and, on success, stores the tagged children.
	// Returns false if seq does not satisfy the descriptors.
	SetChildrenList(seq []*Node) bool
	// IsValid reports whether every required descriptor has been filled.
	IsValid() bool
	// CreateNode assembles the immutable Node. Fails if IsValid is false.
	CreateNode() (*Node, error)
}

// BaseBuilder is a generic [Builder] usable by any [Type] whose semantics
// are "accept any data, validate children against Descriptors via the
// allocator". Language-specific types can embed BaseBuilder and override
// SetData to add payload constraints.
type BaseBuilder struct {
	typ      *Type
	data     string
	children []*Node
	frag     fragment.Fragment
	hasData  bool
	valid    bool
}

// NewBaseBuilder creates a BaseBuilder for t.
func NewBaseBuilder(t *Type) *BaseBuilder {
	return &BaseBuilder{typ: t}
}

// SetFragment implements [Builder].
func (b *BaseBuilder) SetFragment(f fragment.Fragment) {
	b.frag = f
}

// SetData implements [Builder]; the base builder accepts any data.
func (b *BaseBuilder) SetData(data string) bool {
	b.data = data
	b.hasData = true

	return true
}

// SetChildrenList implements [Builder], delegating to [Allocate].
func (b *BaseBuilder) SetChildrenList(seq []*Node) bool {
	allocated, ok := Allocate(b.typ.Descriptors, seq, b.typ.AllowTrailing)
	if !ok {
		return false
	}

	b.children = allocated
	b.valid = true

	return true
}

// IsValid implements [Builder].
func (b *BaseBuilder) IsValid() bool {
	if len(b.typ.Descriptors) == 0 {
		// No required children: valid once data has been considered (even
		// the zero value), matching CreateNode's only hard requirement.
		return true
	}

	return b.valid
}

// CreateNode implements [Builder].
func (b *BaseBuilder) CreateNode() (*Node, error) {
	if !b.IsValid() {
		return nil, &ValidationError{Type: b.typ.Name, Reason: "required child descriptors not satisfied"}
	}

	return &Node{
		typ:      b.typ,
		data:     b.data,
		children: b.children,
		frag:     b.frag,
	}, nil
}
