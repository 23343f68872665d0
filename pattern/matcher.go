package pattern

import (
	"context"

	"github.com/astcore/astcore/difftree"
	"github.com/astcore/astcore/tree"
)

// MatchStats counts match attempts, mirroring the teacher's cache-hit/miss
// instrumentation (PatternMatcher.CacheStats) so downstream tooling can
// reason about match-site fan-out the same way.
type MatchStats struct {
	Hits   int
	Misses int
}

// Matcher locates every root-level site in a target tree matching a Pattern.
// Patterns are single-use value trees, so unlike the teacher's compiled
// query cache there is nothing to memoise across matches — only the
// hit/miss counters carry over.
type Matcher struct {
	pattern *Pattern
	Stats   MatchStats
}

// NewMatcher builds a Matcher for pattern.
func NewMatcher(pattern *Pattern) *Matcher {
	return &Matcher{pattern: pattern}
}

// Match walks target pre-order and returns every node at which the pattern
// matches (rule set on [Matches]), deduplicated by identity. It checks
// ctx between target nodes so large trees can be cancelled.
func (m *Matcher) Match(ctx context.Context, target *tree.Node) ([]*tree.Node, error) {
	var sites []*tree.Node

	seen := make(map[*tree.Node]bool)
	stack := []*tree.Node{target}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return sites, err
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if Matches(m.pattern, m.pattern.Root(), n) {
			m.Stats.Hits++

			if !seen[n] {
				seen[n] = true
				sites = append(sites, n)
			}
		} else {
			m.Stats.Misses++
		}

		children := n.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	return sites, nil
}

// Matches implements matching rules 1-3 for a single site, shared between
// Matcher and the patch package's slot-alignment pass.
func Matches(pat *Pattern, pn *difftree.DiffNode, t *tree.Node) bool {
	decl := pn.Original()

	if _, ok := pat.HoleOf(decl); ok {
		if t.Type().Name != decl.Type().Name && !t.Type().BelongsToGroup(decl.Type().Name) {
			return false
		}
	} else {
		if t.Type().Name != decl.Type().Name {
			return false
		}

		if decl.Data() != "" && decl.Data() != t.Data() {
			return false
		}
	}

	return matchesChildren(pat, pn, t.Children())
}

// matchesChildren implements rule 3: pattern children must appear, in
// order, as an ordered subsequence of the target's children.
func matchesChildren(pat *Pattern, pn *difftree.DiffNode, targetChildren []*tree.Node) bool {
	patChildren := pn.Children()

	ti := 0

	for _, pc := range patChildren {
		found := false

		for ti < len(targetChildren) {
			cand := targetChildren[ti]
			ti++

			if Matches(pat, pc, cand) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}
