package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/astcore/astcore/asterr"
	"github.com/astcore/astcore/astlog"
	"github.com/astcore/astcore/tree"
)

// Transformer runs the ordered converter list to a fixpoint over a tree:
// each pass reduces every node's immediate children left-to-right (first
// matching converter wins, declared order), rebuilding nodes whose
// children changed, until a full pass makes no change anywhere.
//
// Not safe for concurrent use.
type Transformer struct {
	Converters []Converter
	Factory    Factory
	Metrics    *Metrics

	// MaxPassesOverride, if non-zero, replaces the suggested depth*width
	// cap. Mostly useful for tests that want to observe cap-hit behaviour
	// on a small tree.
	MaxPassesOverride int
}

// Transform repeatedly applies Converters until no node changes in a full
// pass, or the pass cap is reached (suggested depth*width, spec §4.I). On
// cap hit it logs a non-fatal warning via astlog and returns the
// best-effort result rather than failing. Transform checks ctx between
// passes.
func (tr *Transformer) Transform(ctx context.Context, root *tree.Node) (*tree.Node, error) {
	passCap := tr.MaxPassesOverride
	if passCap <= 0 {
		depth, width := measure(root)
		passCap = depth * width
		if passCap < 1 {
			passCap = 1
		}
	}

	current := root

	for pass := 0; pass < passCap; pass++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, changed, err := tr.passOverNode(current)
		if err != nil {
			return nil, err
		}

		if tr.Metrics != nil {
			tr.Metrics.ObservePass()
		}

		if !changed {
			return current, nil
		}

		current = next
	}

	if tr.Metrics != nil {
		tr.Metrics.ObserveCapHit()
	}

	astlog.New("convert", slog.LevelDebug).WarnContext(ctx, "conversion pass cap reached before fixpoint",
		"cap", passCap, "error", asterr.ErrConversionCapHit)

	return current, nil
}

// passOverNode performs one left-to-right reduction of n's immediate
// children, then recurses into the (possibly reduced) children to do the
// same at every deeper level, composing into one full pre-order pass.
func (tr *Transformer) passOverNode(n *tree.Node) (*tree.Node, bool, error) {
	children := n.Children()
	reduced := tr.reduceOnce(children)

	levelChanged := !sameSequence(children, reduced)

	rebuilt := make([]*tree.Node, len(reduced))
	deeperChanged := false

	for i, c := range reduced {
		rc, changed, err := tr.passOverNode(c)
		if err != nil {
			return nil, false, err
		}

		rebuilt[i] = rc

		if changed {
			deeperChanged = true
		}
	}

	if !levelChanged && !deeperChanged {
		return n, false, nil
	}

	newNode, err := rebuildWith(n, rebuilt)
	if err != nil {
		return nil, false, err
	}

	return newNode, true, nil
}

// reduceOnce performs a single left-to-right reduction pass over children:
// at each position, the first converter (in declared order) that matches
// wins; rewritten output is not rescanned within this call.
func (tr *Transformer) reduceOnce(children []*tree.Node) []*tree.Node {
	var out []*tree.Node

	i := 0
	for i < len(children) {
		matched := false

		for _, c := range tr.Converters {
			res, ok := c.Convert(children, i, tr.Factory)
			if !ok || res.Consumed < 1 {
				continue
			}

			out = append(out, res.Node)
			i += res.Consumed
			matched = true

			if tr.Metrics != nil {
				tr.Metrics.ObserveConversion()
			}

			break
		}

		if !matched {
			out = append(out, children[i])
			i++
		}
	}

	return out
}

func sameSequence(a, b []*tree.Node) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func rebuildWith(n *tree.Node, children []*tree.Node) (*tree.Node, error) {
	b := n.Type().NewBuilder()
	b.SetFragment(n.Fragment())

	if !b.SetData(n.Data()) {
		return nil, fmt.Errorf("convert: rebuild %s: %w", n.Type().Name, asterr.ErrValidationFailed)
	}

	if !b.SetChildrenList(children) {
		return nil, fmt.Errorf("convert: rebuild %s: %w", n.Type().Name, asterr.ErrValidationFailed)
	}

	return b.CreateNode()
}

// measure returns root's max depth and max sibling width, used to compute
// the suggested depth*width pass cap.
func measure(root *tree.Node) (depth, width int) {
	var walk func(n *tree.Node, d int)

	walk = func(n *tree.Node, d int) {
		if d > depth {
			depth = d
		}

		children := n.Children()
		if len(children) > width {
			width = len(children)
		}

		for _, c := range children {
			walk(c, d+1)
		}
	}

	walk(root, 1)

	return depth, width
}
