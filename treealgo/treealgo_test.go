package treealgo_test

import (
	"testing"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/tree"
	"github.com/astcore/astcore/treealgo"
)

func mustParse(t *testing.T, src string) *tree.Node {
	t.Helper()

	n, err := draft.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}

	return n
}

func TestFindFirstFromRootPreOrder(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `R(A,B<"hit">,C(D<"hit">))`)

	found := treealgo.FindFirstFromRoot(root, func(n *tree.Node) bool {
		return n.Data() == "hit"
	})

	if found == nil || found.Type().Name != "B" {
		t.Fatalf("expected first pre-order hit to be B, got %v", found)
	}
}

func TestFindFirstFromRootNoMatch(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `R(A,B)`)

	if found := treealgo.FindFirstFromRoot(root, func(*tree.Node) bool { return false }); found != nil {
		t.Fatalf("expected nil, got %v", found)
	}
}

func TestIdenticalDetection(t *testing.T) {
	t.Parallel()

	// Concrete scenario 2 from spec.md §8.
	root := mustParse(t, `T<"a">(T<"b">,T<"c">(F<"a">,T<"b">,T<"a">,F<"a">))`)

	classes := treealgo.Identical(root)
	if len(classes) != 3 {
		t.Fatalf("Identical classes = %d, want 3", len(classes))
	}
}

func TestNodeReplacerAtRoot(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `A(B)`)
	target := mustParse(t, `Z`)

	newRoot, idx := treealgo.Replace(root, root, target)
	if idx != -1 {
		t.Fatalf("expected index -1 for root replacement, got %d", idx)
	}

	if newRoot != target {
		t.Fatal("expected replacement result to be target itself")
	}
}

func TestNodeReplacerDeep(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `X(Y,A(B,D),Z)`)
	bNode := root.Children()[1].Children()[0]
	target := mustParse(t, `C`)

	newRoot, idx := treealgo.Replace(root, bNode, target)
	if idx != 0 {
		t.Fatalf("expected swap index 0 (B is first child of A), got %d", idx)
	}

	if got := draft.String(newRoot); got != `X(Y,A(C,D),Z)` {
		t.Fatalf("String() = %q, want X(Y,A(C,D),Z)", got)
	}

	// Immutability: the original tree must be untouched.
	if got := draft.String(root); got != `X(Y,A(B,D),Z)` {
		t.Fatalf("original tree mutated: %q", got)
	}
}

func TestNodeReplacerNotFound(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `A(B)`)
	stray := mustParse(t, `C`)
	target := mustParse(t, `Z`)

	newRoot, idx := treealgo.Replace(root, stray, target)
	if idx != -1 {
		t.Fatalf("expected index -1 on not-found, got %d", idx)
	}

	if !tree.IsDummy(newRoot) {
		t.Fatal("expected Dummy() result when source is not found")
	}
}
