// Package convert implements the left-to-right conversion engine: an
// ordered list of Converter rules repeatedly reduces a flat child sequence
// into typed nodes until fixpoint, grounded on the teacher's
// OperatorRegistry ordered-dispatch idiom (pkg/uast/pkg/node/operators.go)
// generalised from a name-keyed map to an explicit ordered slice, since
// converter order is semantically load-bearing here (first match wins) in
// a way a map could not preserve.
package convert

import "github.com/astcore/astcore/tree"

// Factory builds nodes for a language dialect by type name, the same
// capability a Converter needs to construct its replacement node without
// this package knowing any language's concrete types.
type Factory interface {
	// NewBuilder returns a fresh builder for the named type, or nil if the
	// name is unknown to this factory.
	NewBuilder(typeName string) tree.Builder
}

// Extracted is the scratch container a Converter's inner matcher populates
// while deciding whether a candidate slice matches: hole IDs map to
// captured subtrees and to captured data strings. Single-owner: a fresh
// Extracted is used per conversion attempt, never shared.
type Extracted struct {
	Nodes map[int][]*tree.Node
	Data  map[int][]string
}

// NewExtracted returns an empty scratch container.
func NewExtracted() *Extracted {
	return &Extracted{
		Nodes: make(map[int][]*tree.Node),
		Data:  make(map[int][]string),
	}
}

// CaptureNode records n under holeID.
func (e *Extracted) CaptureNode(holeID int, n *tree.Node) {
	e.Nodes[holeID] = append(e.Nodes[holeID], n)
}

// CaptureData records s under holeID.
func (e *Extracted) CaptureData(holeID int, s string) {
	e.Data[holeID] = append(e.Data[holeID], s)
}

// Result is what a successful Converter application produces: the
// replacement node and how many input children it consumed.
type Result struct {
	Node     *tree.Node
	Consumed int
}

// Converter matches a contiguous run of siblings starting at startIndex
// and, on success, returns a replacement node plus how many children it
// consumed (consumed >= MinConsumed()). Converters are pure: no side
// effects beyond what they report through Extracted.
type Converter interface {
	// Convert attempts a match against children[startIndex:]. ok is false
	// if this converter does not apply here.
	Convert(children []*tree.Node, startIndex int, factory Factory) (result Result, ok bool)
	// MinConsumed is the minimum number of children a successful match
	// must consume, used to bound the fixpoint's termination measure.
	MinConsumed() int
}
