// Package adapter declares the capability interfaces external collaborators
// implement against this module's core types: DOT visualisation, graph-
// database persistence, a JSON-ish tree codec, and a type factory. No
// concrete implementation ships here — every one of these is deliberately
// out of scope per spec §1 — mirroring the teacher's LanguageParser
// interface pattern (pkg/uast/types.go): one small capability interface per
// concern, with concrete adapters living outside this module.
package adapter

import (
	"context"

	"github.com/astcore/astcore/tree"
)

// DotRenderer renders a Tree to DOT graph-description text (spec §6).
type DotRenderer interface {
	Render(t *tree.Tree) (string, error)
}

// GraphStore persists and reconstructs trees against a graph database
// (spec §6). Implementations are expected to serialise node properties as
// BEGIN/END/FRAGMENT/TYPE/DATA/CHILD_COUNT/UUID and order children by an
// INDEX edge property.
type GraphStore interface {
	Persist(ctx context.Context, t *tree.Tree) error
	Load(ctx context.Context, rootID string) (*tree.Tree, error)
}

// TreeCodec (de)serialises a Tree to a byte encoding (spec §6's JSON tree
// descriptor is one such encoding; the interface does not mandate JSON).
type TreeCodec interface {
	Marshal(t *tree.Tree) ([]byte, error)
	Unmarshal([]byte) (*tree.Tree, error)
}

// Factory resolves a language dialect's type catalogue by name, the
// reconstruction hook GraphStore/TreeCodec implementations use to rebuild
// typed nodes via the builder protocol.
type Factory interface {
	New(typeName string) (*tree.Type, bool)
}
