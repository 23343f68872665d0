// Package draft implements DraftNode: an unvalidated tree node whose type
// accepts any data and any children, plus the textual mini-language grammar
// used to write trees by hand in tests and tools.
//
// Grammar (spec §4.C):
//
//	node := IDENT [ '<' STRING '>' ] [ '(' [ list ] ')' ]
//	list := node { ',' node }
//
// IDENT is [A-Za-z_][A-Za-z0-9_]*. STRING is double-quoted with backslash
// escapes. Whitespace is ignored outside strings.
package draft

import (
	"strings"

	"github.com/astcore/astcore/tree"
)

// AnyType is a shared, generic draft Type named "Draft": it rejects
// nothing, imposes no child descriptors, and allows any number of trailing
// children. Nodes built by [New], [Parse] and [Constructor] do not use it;
// each of them gets its own Type named after the node, with the same
// accept-anything rules and "Draft" in its hierarchy.
var AnyType = &tree.Type{
	Name:          "Draft",
	Descriptors:   nil,
	Hierarchy:     []string{"Draft"},
	AllowTrailing: true,
}

func init() {
	AnyType.NewBuilder = func() tree.Builder {
		c := NewConstructor()
		c.named = AnyType

		return c
	}
}

// New builds a draft node with the given name (stored as the node's type
// name), data, and children. It never fails: the draft type accepts
// anything.
func New(name, data string, children ...*tree.Node) *tree.Node {
	typ := &tree.Type{Name: name, Hierarchy: []string{name, "Draft"}, AllowTrailing: true}
	typ.NewBuilder = func() tree.Builder {
		nc := NewConstructor()
		nc.named = typ

		return nc
	}

	b := NewConstructor()
	b.named = typ
	b.SetData(data)
	b.SetChildrenList(children)

	n, _ := b.CreateNode()

	return n
}

// Parse parses a draft-language string into a tree.Node. It returns a
// [*ParseError] wrapping the offending row/column on malformed input, per
// spec §7 (ParseError is fatal with row/column).
func Parse(input string) (*tree.Node, error) {
	index := make(map[string]map[*tree.Node]struct{})

	return ParseIndexed(input, index)
}

// NewTree parses input and wraps the result in a [tree.Tree]. This lives in
// package draft rather than as tree.FromDraft: tree cannot import draft
// without an import cycle (draft already depends on tree for [tree.Node]
// and [tree.Builder]), so the convenience constructor has to live on
// whichever side of the cycle does the parsing.
func NewTree(input string) (*tree.Tree, error) {
	root, err := Parse(input)
	if err != nil {
		return nil, err
	}

	return tree.New(root), nil
}

// ParseIndexed parses input like [Parse] and additionally records every
// constructed node, keyed by its type name, into index — the optional
// Map<String, Set<Node>> the spec describes for test retrieval.
func ParseIndexed(input string, index map[string]map[*tree.Node]struct{}) (*tree.Node, error) {
	p := &parser{lex: newLexer(input)}

	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	if index != nil {
		recordIndex(n, index)
	}

	return n, nil
}

func recordIndex(n *tree.Node, index map[string]map[*tree.Node]struct{}) {
	if n == nil {
		return
	}

	name := n.Type().Name

	set, ok := index[name]
	if !ok {
		set = make(map[*tree.Node]struct{})
		index[name] = set
	}

	set[n] = struct{}{}

	for _, c := range n.Children() {
		recordIndex(c, index)
	}
}

// String renders n back into the canonical draft grammar: IDENT['<'STRING'>']['('list')'].
func String(n *tree.Node) string {
	var buf strings.Builder

	writeNode(&buf, n)

	return buf.String()
}

func writeNode(buf *strings.Builder, n *tree.Node) {
	if n == nil {
		buf.WriteString("∅")

		return
	}

	buf.WriteString(n.Type().Name)

	if n.Data() != "" {
		buf.WriteString("<")
		buf.WriteString(quote(n.Data()))
		buf.WriteString(">")
	}

	children := n.Children()
	if len(children) == 0 {
		return
	}

	buf.WriteString("(")

	for i, c := range children {
		if i > 0 {
			buf.WriteString(",")
		}

		writeNode(buf, c)
	}

	buf.WriteString(")")
}

func quote(s string) string {
	var buf strings.Builder

	buf.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(r)
		}
	}

	buf.WriteByte('"')

	return buf.String()
}
