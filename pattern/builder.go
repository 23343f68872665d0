package pattern

import (
	"github.com/astcore/astcore/difftree"
	"github.com/astcore/astcore/tree"
)

// PatternBuilder assembles a Pattern over a scratch tree (typically parsed
// via the draft mini-language). It is single-owner, not safe for concurrent
// use, mirroring the teacher's "not safe for concurrent use" convention on
// its allocator.
type PatternBuilder struct {
	builder *difftree.DiffTreeBuilder
	holes   map[*tree.Node]int
}

// NewPatternBuilder starts a pattern build over root.
func NewPatternBuilder(root *tree.Node) *PatternBuilder {
	return &PatternBuilder{
		builder: difftree.New(root),
		holes:   make(map[*tree.Node]int),
	}
}

// MakeHole marks node as a hole identified by holeID. It reports false if
// node is not reachable from the pattern's root.
func (pb *PatternBuilder) MakeHole(node *tree.Node, holeID int) bool {
	if !pb.builder.Contains(node) {
		return false
	}

	pb.holes[node] = holeID

	return true
}

// InsertNode embeds an Insert action, as [difftree.DiffTreeBuilder.InsertNode].
func (pb *PatternBuilder) InsertNode(ins difftree.Insertion) bool {
	return pb.builder.InsertNode(ins)
}

// ReplaceNode embeds a Replace action, as [difftree.DiffTreeBuilder.ReplaceNode].
func (pb *PatternBuilder) ReplaceNode(old, repl *tree.Node) bool {
	return pb.builder.ReplaceNode(old, repl)
}

// DeleteNode embeds a Delete action, as [difftree.DiffTreeBuilder.DeleteNode].
func (pb *PatternBuilder) DeleteNode(victim *tree.Node) bool {
	return pb.builder.DeleteNode(victim)
}

// Build finalises the pattern.
func (pb *PatternBuilder) Build() *Pattern {
	return &Pattern{builder: pb.builder, holes: pb.holes}
}
