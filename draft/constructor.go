package draft

import (
	"errors"

	"github.com/astcore/astcore/fragment"
	"github.com/astcore/astcore/tree"
)

// errEmptyName is returned by IsValid/CreateNode when no name has been set:
// spec §4.C requires "isValid requires non-empty name".
var errEmptyName = errors.New("draft: node name must not be empty")

// Constructor is the draft mini-language's one-shot builder, implementing
// [tree.Builder] plus the name-setting extension the grammar needs.
type Constructor struct {
	named    *tree.Type
	name     string
	data     string
	children []*tree.Node
	frag     fragment.Fragment
}

// NewConstructor creates a fresh Constructor with no name set yet.
func NewConstructor() *Constructor {
	return &Constructor{}
}

// SetName sets the node's type name (stored as the Type.Name of a fresh
// draft-flavoured Type so DraftNodes of different names remain
// distinguishable by BelongsToGroup("Draft") while still reporting their own
// name).
func (c *Constructor) SetName(name string) *Constructor {
	c.name = name

	return c
}

// AddChild appends a single child, for incremental construction outside the
// grammar parser.
func (c *Constructor) AddChild(child *tree.Node) *Constructor {
	c.children = append(c.children, child)

	return c
}

// SetFragment implements [tree.Builder].
func (c *Constructor) SetFragment(f fragment.Fragment) {
	c.frag = f
}

// SetData implements [tree.Builder]. Draft nodes accept any data.
func (c *Constructor) SetData(data string) bool {
	c.data = data

	return true
}

// SetChildrenList implements [tree.Builder]. Draft nodes accept any
// children in any order (the type permits trailing children unconditionally).
func (c *Constructor) SetChildrenList(seq []*tree.Node) bool {
	c.children = seq

	return true
}

// IsValid implements [tree.Builder]: requires a non-empty name.
func (c *Constructor) IsValid() bool {
	return c.name != "" || c.named != nil
}

// CreateNode implements [tree.Builder].
func (c *Constructor) CreateNode() (*tree.Node, error) {
	if !c.IsValid() {
		return nil, errEmptyName
	}

	typ := c.named
	if typ == nil {
		typ = &tree.Type{Name: c.name, Hierarchy: []string{c.name, "Draft"}, AllowTrailing: true}
		typ.NewBuilder = func() tree.Builder {
			nc := NewConstructor()
			nc.named = typ

			return nc
		}
	}

	b := tree.NewBaseBuilder(typ)
	b.SetFragment(c.frag)
	b.SetData(c.data)
	b.SetChildrenList(c.children)

	return b.CreateNode()
}
