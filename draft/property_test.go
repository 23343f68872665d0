package draft_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/tree"
)

// genDraftNode generates a random draft tree of bounded depth and breadth,
// mirroring the teacher pack's rapid.Custom generator idiom
// (0xlemi-microprolly's pkg/tree/serialize_test.go).
func genDraftNode(depth int) *rapid.Generator[*tree.Node] {
	return rapid.Custom(func(t *rapid.T) *tree.Node {
		name := rapid.SampledFrom([]string{"A", "B", "C", "X", "Y"}).Draw(t, "name")
		data := rapid.SampledFrom([]string{"", "1", "hello"}).Draw(t, "data")

		var children []*tree.Node

		if depth > 0 {
			n := rapid.IntRange(0, 3).Draw(t, "childCount")
			for i := 0; i < n; i++ {
				children = append(children, genDraftNode(depth-1).Draw(t, "child"))
			}
		}

		return draft.New(name, data, children...)
	})
}

// TestPropertyDeepCloneRoundTrips checks spec §8's DeepClone round-trip
// property over randomly generated draft trees.
func TestPropertyDeepCloneRoundTrips(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		root := genDraftNode(3).Draw(t, "root")

		cloned, err := tree.DeepClone(root)
		if err != nil {
			t.Fatalf("DeepClone: %v", err)
		}

		if !tree.DeepCompare(root, cloned) {
			t.Fatal("DeepClone result should DeepCompare equal to the original")
		}

		if tree.AbsoluteHash(root) != tree.AbsoluteHash(cloned) {
			t.Fatal("DeepClone result should have the same AbsoluteHash as the original")
		}
	})
}

// TestPropertyParseStringRoundTrips checks spec §8's Parse/String round-trip
// property: printing a tree through draft.String and reparsing it yields a
// tree that DeepCompares equal to the original.
func TestPropertyParseStringRoundTrips(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		root := genDraftNode(3).Draw(t, "root")

		src := draft.String(root)

		reparsed, err := draft.Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}

		if !tree.DeepCompare(root, reparsed) {
			t.Fatalf("Parse(String(root)) should DeepCompare equal to root; src=%q", src)
		}
	})
}
