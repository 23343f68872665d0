package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func buildTestRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "asttool",
		Short: "asttool: parse, match, patch, and convert trees written in the draft mini-language",
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(matchCmd())
	rootCmd.AddCommand(patchCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func writeTempDraft(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tree.draft")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp draft file: %v", err)
	}

	return path
}

func runCmd(t *testing.T, args []string) string {
	t.Helper()

	rootCmd := buildTestRootCmd()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("args %v: %v", args, err)
	}

	return buf.String()
}

func TestAsttoolHelp(t *testing.T) {
	t.Parallel()

	out := runCmd(t, []string{"--help"})

	if !strings.Contains(out, "asttool") {
		t.Fatalf("expected help output to mention asttool, got: %s", out)
	}
}

func TestAsttoolParseRoundTrips(t *testing.T) {
	t.Parallel()

	path := writeTempDraft(t, `X(Y,Z<"v">)`)

	out := runCmd(t, []string{"parse", path})

	if !strings.Contains(out, `X(Y,Z<"v">)`) {
		t.Fatalf("expected round-tripped draft string, got: %s", out)
	}
}

func TestAsttoolMatchFindsSite(t *testing.T) {
	t.Parallel()

	patternPath := writeTempDraft(t, `A`)
	targetPath := writeTempDraft(t, `X(Y,A,Z)`)

	out := runCmd(t, []string{"match", patternPath, targetPath})

	if !strings.Contains(out, "1 site(s)") {
		t.Fatalf("expected exactly one match site, got: %s", out)
	}
}

func TestAsttoolPatchReplacesSite(t *testing.T) {
	t.Parallel()

	targetPath := writeTempDraft(t, `X(Y,A,Z)`)
	findPath := writeTempDraft(t, `A`)
	replacePath := writeTempDraft(t, `C`)

	out := runCmd(t, []string{"patch", targetPath, findPath, replacePath})

	if !strings.Contains(out, `X(Y,C,Z)`) {
		t.Fatalf("expected A replaced with C, got: %s", out)
	}
}

func TestAsttoolConvertCollapsesAddition(t *testing.T) {
	t.Parallel()

	path := writeTempDraft(t, `Root(Int<"2">,Op<"+">,Int<"3">)`)

	out := runCmd(t, []string{"convert", path})

	if !strings.Contains(out, `Root(Addition(Int<"2">,Int<"3">))`) {
		t.Fatalf("expected collapsed addition, got: %s", out)
	}
}
