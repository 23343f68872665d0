package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/astcore/astcore/difftree"
	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/pattern"
	"github.com/astcore/astcore/tree"
)

func patchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <target-file> <find-file> <replace-file>",
		Short: "Replace every site matching find with replace",
		Long: `Replace every site in target matching find's shape with replace.

All three files are draft-language source. find is matched literally (no
holes) anywhere in target, including target's own root; every match site,
however deeply nested, is swapped whole for replace's root.

Example:
  asttool patch target.draft find.draft replace.draft`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args[0], args[1], args[2], cmd.OutOrStdout())
		},
	}

	return cmd
}

func runPatch(targetPath, findPath, replacePath string, out io.Writer) error {
	targetRoot, err := parseFile(targetPath)
	if err != nil {
		return err
	}

	findRoot, err := parseFile(findPath)
	if err != nil {
		return err
	}

	replaceRoot, err := parseFile(replacePath)
	if err != nil {
		return err
	}

	// target may itself be the match site, which has no slot of its own to
	// replace; wrap it in a synthetic container so every site, root
	// included, sits inside some parent's child list.
	container := draft.New("__container__", "", targetRoot)

	findPat := pattern.NewPatternBuilder(findRoot).Build()
	matcher := pattern.NewMatcher(findPat)

	sites, err := matcher.Match(context.Background(), container)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	b := difftree.New(container)

	replaced := 0

	for _, site := range sites {
		if b.ReplaceNode(site, replaceRoot) {
			replaced++
		}
	}

	after, err := b.Root().After()
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}

	result := after.Children()[0]

	fmt.Fprintln(out, draft.String(result))
	fmt.Fprintf(out, "%d site(s) replaced\n", replaced)

	return nil
}

func parseFile(path string) (*tree.Node, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	root, err := draft.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return root, nil
}
