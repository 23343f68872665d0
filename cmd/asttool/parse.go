package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/tree"
)

func parseCmd() *cobra.Command {
	var showHash bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse draft-language source into a tree and print its canonical form",
		Long: `Parse draft-language source into a tree and print its canonical form.

Examples:
  asttool parse tree.draft              # Parse a file
  cat tree.draft | asttool parse -      # Parse from stdin
  asttool parse --hash tree.draft       # Also print the absolute hash`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, showHash, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&showHash, "hash", false, "print the tree's absolute structural hash")

	return cmd
}

func runParse(args []string, showHash bool, out io.Writer) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	root, err := draft.Parse(src)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	fmt.Fprintln(out, draft.String(root))

	if showHash {
		fmt.Fprintf(out, "hash: %x\n", tree.AbsoluteHash(root))
	}

	return nil
}

// readSource reads draft source from args[0], or stdin if args is empty or
// args[0] is "-".
func readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}

	return string(data), nil
}
