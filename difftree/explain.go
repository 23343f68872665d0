package difftree

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/astcore/astcore/draft"
)

// Explain renders a human-readable character-level diff between dn's
// before() and after() projections, using the draft grammar as the text
// representation. It is a diagnostic helper, not part of the edit
// semantics: After can still fail (a *tree.ValidationError) independent of
// Explain.
func Explain(dn *DiffNode) (string, error) {
	before := draft.String(dn.Before())

	after, err := dn.After()
	if err != nil {
		return "", err
	}

	afterStr := draft.String(after)

	if before == afterStr {
		return before, nil
	}

	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(before, afterStr, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf strings.Builder

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			buf.WriteString("+{")
			buf.WriteString(d.Text)
			buf.WriteString("}")
		case diffmatchpatch.DiffDelete:
			buf.WriteString("-{")
			buf.WriteString(d.Text)
			buf.WriteString("}")
		case diffmatchpatch.DiffEqual:
			buf.WriteString(d.Text)
		}
	}

	return buf.String(), nil
}
