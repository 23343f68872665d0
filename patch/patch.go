// Package patch applies a pattern's embedded edit actions at every site the
// pattern matches in a target tree, grounded on the teacher's own
// detect-then-rebuild two-phase shape (pkg/uast's DetectChanges followed by
// a rebuild pass) adapted from a node-catalogue diff to pattern-embedded
// actions.
package patch

import (
	"context"
	"fmt"
	"sort"

	"github.com/astcore/astcore/asterr"
	"github.com/astcore/astcore/difftree"
	"github.com/astcore/astcore/pattern"
	"github.com/astcore/astcore/tree"
	"github.com/astcore/astcore/treealgo"
)

// IncompatibleTransformError reports that a matched site could not be
// rebuilt after applying its pattern's actions — spec §7's
// IncompatibleTransform, e.g. a delete leaves a required child slot empty.
// The offending site is skipped; other sites still proceed.
type IncompatibleTransformError struct {
	Site *tree.Node
	Err  error
}

func (e *IncompatibleTransformError) Error() string {
	return fmt.Sprintf("patch: incompatible transform at %s: %v", e.Site.Type().Name, e.Err)
}

func (e *IncompatibleTransformError) Unwrap() []error { return []error{e.Err, asterr.ErrIncompatibleTransform} }

// DefaultPatcher applies a Pattern's embedded actions at every match site
// found by pattern.Matcher.
type DefaultPatcher struct{}

// Patch finds all matches of pat in root and applies them, innermost match
// first; a site enclosing an already patched site has been rebuilt by then,
// is no longer reachable by identity, and is skipped. Sites that
// cannot be rebuilt are skipped (recorded as a non-fatal
// IncompatibleTransformError in the returned slice); if no matches are
// found, Patch returns a deep copy of root. Patch checks ctx between sites.
func (p *DefaultPatcher) Patch(ctx context.Context, root *tree.Node, pat *pattern.Pattern) (*tree.Node, []error, error) {
	m := pattern.NewMatcher(pat)

	sites, err := m.Match(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	if len(sites) == 0 {
		cloned, err := tree.DeepClone(root)
		if err != nil {
			return nil, nil, err
		}

		return cloned, nil, nil
	}

	depth := make(map[*tree.Node]int)
	computeDepths(root, 0, depth)

	sort.SliceStable(sites, func(i, j int) bool {
		return depth[sites[i]] > depth[sites[j]]
	})

	result := root

	var warnings []error

	for _, site := range sites {
		if err := ctx.Err(); err != nil {
			return nil, warnings, err
		}

		replacement, err := applySite(pat, pat.Root(), site)
		if err != nil {
			warnings = append(warnings, &IncompatibleTransformError{Site: site, Err: err})
			continue
		}

		newResult, idx := treealgo.Replace(result, site, replacement)
		if idx == -1 && tree.IsDummy(newResult) {
			// site is no longer reachable (patching a site nested inside
			// it rebuilt it); this is expected for overlapping matches.
			continue
		}

		result = newResult
	}

	return result, warnings, nil
}

func computeDepths(n *tree.Node, d int, out map[*tree.Node]int) {
	out[n] = d
	for _, c := range n.Children() {
		computeDepths(c, d+1, out)
	}
}

// applySite rebuilds t by applying pn's recorded actions, aligning pn's
// slots against t's children via the same ordered-subsequence rule the
// matcher uses.
func applySite(pat *pattern.Pattern, pn *difftree.DiffNode, t *tree.Node) (*tree.Node, error) {
	slots := pn.Slots()
	targetChildren := t.Children()

	var out []*tree.Node

	ti := 0

	for _, s := range slots {
		if s.Kind == difftree.SlotInsert {
			out = append(out, s.Payload)
			continue
		}

		matched := -1

		for ti < len(targetChildren) {
			if pattern.Matches(pat, s.Child, targetChildren[ti]) {
				matched = ti
				break
			}

			out = append(out, targetChildren[ti])
			ti++
		}

		if matched == -1 {
			return nil, fmt.Errorf("pattern slot %s has no aligned target child", s.Original.Type().Name)
		}

		cand := targetChildren[ti]
		ti++

		switch s.Action {
		case difftree.ActionDelete:
			// dropped
		case difftree.ActionReplace:
			out = append(out, s.Payload)
		default:
			newChild, err := applySite(pat, s.Child, cand)
			if err != nil {
				return nil, err
			}

			out = append(out, newChild)
		}
	}

	for ; ti < len(targetChildren); ti++ {
		out = append(out, targetChildren[ti])
	}

	b := t.Type().NewBuilder()
	b.SetFragment(t.Fragment())

	if !b.SetData(t.Data()) {
		return nil, fmt.Errorf("rebuild %s: data rejected", t.Type().Name)
	}

	if !b.SetChildrenList(out) {
		return nil, fmt.Errorf("rebuild %s: children rejected by allocator", t.Type().Name)
	}

	return b.CreateNode()
}
