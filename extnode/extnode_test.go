package extnode_test

import (
	"testing"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/extnode"
	"github.com/astcore/astcore/tree"
)

func mustParse(t *testing.T, src string) *tree.Node {
	t.Helper()

	n, err := draft.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}

	return n
}

func TestCreateLinksParentIndexSiblings(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `R(A,B,C)`)
	ext := extnode.Create(root)

	if ext.Parent() != nil {
		t.Fatal("expected root's parent to be nil")
	}

	kids := ext.ExtChildren()
	if len(kids) != 3 {
		t.Fatalf("expected 3 children, got %d", len(kids))
	}

	for i, k := range kids {
		if k.Parent() != ext {
			t.Fatalf("child %d parent mismatch", i)
		}

		if k.Index() != i {
			t.Fatalf("child %d index = %d, want %d", i, k.Index(), i)
		}
	}

	if kids[0].Left() != nil {
		t.Fatal("expected first child's left sibling to be nil")
	}

	if kids[0].Right() != kids[1] {
		t.Fatal("expected first child's right sibling to be the second child")
	}

	if kids[2].Right() != nil {
		t.Fatal("expected last child's right sibling to be nil")
	}

	if kids[1].Left() != kids[0] || kids[1].Right() != kids[2] {
		t.Fatal("expected middle child to see both siblings")
	}
}

func TestAbsoluteHashMatchesTreeHash(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `R(A<"x">,B)`)
	ext := extnode.Create(root)

	if ext.AbsoluteHash() != tree.AbsoluteHash(root) {
		t.Fatal("expected memoised hash to match tree.AbsoluteHash")
	}

	if ext.ExtChild(0).AbsoluteHash() != tree.AbsoluteHash(root.Children()[0]) {
		t.Fatal("expected child hash to match tree.AbsoluteHash of the child prototype")
	}
}

func TestForwardingAndPrototype(t *testing.T) {
	t.Parallel()

	root := mustParse(t, `R<"data">(A)`)
	ext := extnode.Create(root)

	if ext.Prototype() != root {
		t.Fatal("expected Prototype() to return the exact wrapped node")
	}

	if ext.Type().Name != "R" || ext.Data() != "data" {
		t.Fatalf("forwarded Type/Data mismatch: %s %q", ext.Type().Name, ext.Data())
	}
}
