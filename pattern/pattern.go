// Package pattern implements subtree search over a [tree.Node] tree using a
// small pattern tree that may contain holes (wildcard capture points) and
// embedded edit actions (Insert/Replace/Delete), grounded on the teacher's
// PatternMatcher wrapper shape (pkg/mapping/pattern_matcher.go) generalised
// from compiled tree-sitter queries to plain in-process pattern trees.
package pattern

import (
	"github.com/astcore/astcore/difftree"
	"github.com/astcore/astcore/tree"
)

// Pattern is a difference tree (carrying embedded Insert/Replace/Delete
// actions) plus a set of hole declarations. It is immutable once built.
type Pattern struct {
	builder *difftree.DiffTreeBuilder
	holes   map[*tree.Node]int
}

// Root returns the pattern's difference-tree root.
func (p *Pattern) Root() *difftree.DiffNode { return p.builder.Root() }

// HoleOf reports the hole ID declared at node, if any.
func (p *Pattern) HoleOf(node *tree.Node) (int, bool) {
	id, ok := p.holes[node]
	return id, ok
}
