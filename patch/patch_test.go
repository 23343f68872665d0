package patch_test

import (
	"context"
	"testing"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/pattern"
	"github.com/astcore/astcore/patch"
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

// spec §8 scenario 3: replace patch.
func TestPatchReplace(t *testing.T) {
	t.Parallel()

	target := mustParse(t, `X(Y,A(B,D),Z)`)

	patRoot := mustParse(t, `A(B,D)`)
	bNode := patRoot.Children()[0]
	repl := mustParse(t, `C`)

	pb := pattern.NewPatternBuilder(patRoot)
	if !pb.ReplaceNode(bNode, repl) {
		t.Fatal("ReplaceNode(B, C) failed")
	}

	pat := pb.Build()

	p := &patch.DefaultPatcher{}

	result, warnings, err := p.Patch(context.Background(), target, pat)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if got := draft.String(result); got != `X(Y,A(C,D),Z)` {
		t.Fatalf("String() = %q, want X(Y,A(C,D),Z)", got)
	}

	// original tree untouched
	if got := draft.String(target); got != `X(Y,A(B,D),Z)` {
		t.Fatalf("original tree mutated: %q", got)
	}
}

// spec §8 scenario 4: delete patch.
func TestPatchDelete(t *testing.T) {
	t.Parallel()

	target := mustParse(t, `X(Y,A(B,D),Z)`)

	patRoot := mustParse(t, `A(B,D)`)
	bNode := patRoot.Children()[0]

	pb := pattern.NewPatternBuilder(patRoot)
	if !pb.DeleteNode(bNode) {
		t.Fatal("DeleteNode(B) failed")
	}

	pat := pb.Build()

	p := &patch.DefaultPatcher{}

	result, _, err := p.Patch(context.Background(), target, pat)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}

	if got := draft.String(result); got != `X(Y,A(D),Z)` {
		t.Fatalf("String() = %q, want X(Y,A(D),Z)", got)
	}
}

// spec §8 scenario 6: pattern with a hole alongside a delete.
func TestPatchDeleteWithHole(t *testing.T) {
	t.Parallel()

	target := mustParse(t, `X(Y,A(B,D<"11">),Z)`)

	patRoot := mustParse(t, `A(B,D)`)
	bNode := patRoot.Children()[0]
	dNode := patRoot.Children()[1]

	pb := pattern.NewPatternBuilder(patRoot)
	if !pb.DeleteNode(bNode) {
		t.Fatal("DeleteNode(B) failed")
	}

	if !pb.MakeHole(dNode, 0) {
		t.Fatal("MakeHole(D) failed")
	}

	pat := pb.Build()

	m := pattern.NewMatcher(pat)

	sites, err := m.Match(context.Background(), target)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}

	if len(sites) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(sites))
	}

	p := &patch.DefaultPatcher{}

	result, _, err := p.Patch(context.Background(), target, pat)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}

	if got := draft.String(result); got != `X(Y,A(D<"11">),Z)` {
		t.Fatalf("String() = %q, want X(Y,A(D<\"11\">),Z)", got)
	}
}

// Patch idempotence (spec §8): no matches means a deep copy, deep-equal to
// the original but not the same pointer.
func TestPatchNoMatchReturnsDeepClone(t *testing.T) {
	t.Parallel()

	target := mustParse(t, `X(Y,Z)`)

	patRoot := mustParse(t, `NoSuchType`)
	pb := pattern.NewPatternBuilder(patRoot)
	pat := pb.Build()

	p := &patch.DefaultPatcher{}

	result, warnings, err := p.Patch(context.Background(), target, pat)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if result == target {
		t.Fatal("expected a distinct clone, got same pointer")
	}

	if !tree.DeepCompare(result, target) {
		t.Fatal("expected clone to deep-compare equal to original")
	}
}
