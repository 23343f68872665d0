package pattern_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/pattern"
	"github.com/astcore/astcore/tree"
)

// genTarget generates random trees built only from type names P, A, B, C so
// that a fixed pattern shape (P(A,B)) has a realistic chance of matching at
// varying depths.
func genTarget(depth int) *rapid.Generator[*tree.Node] {
	return rapid.Custom(func(t *rapid.T) *tree.Node {
		name := rapid.SampledFrom([]string{"P", "A", "B", "C"}).Draw(t, "name")

		var children []*tree.Node

		if depth > 0 {
			n := rapid.IntRange(0, 3).Draw(t, "childCount")
			for i := 0; i < n; i++ {
				children = append(children, genTarget(depth-1).Draw(t, "child"))
			}
		}

		return draft.New(name, "", children...)
	})
}

// TestPropertyHoleNeverReducesMatchSet checks spec §8's matcher monotonicity
// property: relaxing a pattern constant into a hole never shrinks the set
// of sites it matches.
func TestPropertyHoleNeverReducesMatchSet(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		target := genTarget(3).Draw(t, "target")

		literalRoot, err := draft.Parse(`P(A,B)`)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		literalPat := pattern.NewPatternBuilder(literalRoot).Build()
		literalSites, err := pattern.NewMatcher(literalPat).Match(context.Background(), target)
		if err != nil {
			t.Fatalf("Match (literal): %v", err)
		}

		holeRoot, err := draft.Parse(`P(A,B)`)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		holePB := pattern.NewPatternBuilder(holeRoot)
		if !holePB.MakeHole(holeRoot.Children()[1], 0) {
			t.Fatal("MakeHole failed")
		}

		holePat := holePB.Build()

		holeSites, err := pattern.NewMatcher(holePat).Match(context.Background(), target)
		if err != nil {
			t.Fatalf("Match (hole): %v", err)
		}

		if len(holeSites) < len(literalSites) {
			t.Fatalf("hole pattern matched fewer sites (%d) than literal pattern (%d)", len(holeSites), len(literalSites))
		}
	})
}
