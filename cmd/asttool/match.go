package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/pattern"
)

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <pattern-file> <target-file>",
		Short: "Find every site in target that matches a literal pattern",
		Long: `Find every site in target that matches a literal pattern.

Both files are draft-language source. The pattern has no holes: every
matched site must have the pattern's type names, and its data wherever the
pattern gives data (a pattern node without data matches any data), with
children matched as an ordered subsequence.

Example:
  asttool match pattern.draft target.draft`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(args[0], args[1], cmd.OutOrStdout())
		},
	}

	return cmd
}

func runMatch(patternPath, targetPath string, out io.Writer) error {
	patternSrc, err := os.ReadFile(patternPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", patternPath, err)
	}

	targetSrc, err := os.ReadFile(targetPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", targetPath, err)
	}

	patRoot, err := draft.Parse(string(patternSrc))
	if err != nil {
		return fmt.Errorf("parse pattern: %w", err)
	}

	targetRoot, err := draft.Parse(string(targetSrc))
	if err != nil {
		return fmt.Errorf("parse target: %w", err)
	}

	pat := pattern.NewPatternBuilder(patRoot).Build()
	matcher := pattern.NewMatcher(pat)

	sites, err := matcher.Match(context.Background(), targetRoot)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	for _, site := range sites {
		color.New(color.FgGreen).Fprintf(out, "%s\n", draft.String(site))
	}

	fmt.Fprintf(out, "%d site(s), %d hit(s), %d miss(es)\n", len(sites), matcher.Stats.Hits, matcher.Stats.Misses)

	return nil
}
