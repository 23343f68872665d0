// Package main provides the asttool CLI entry point: a thin exerciser over
// the draft parser, pattern matcher, patcher, and conversion engine, not a
// shipped product in its own right.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string //nolint:gochecknoglobals // CLI flag variable
	verbose bool   //nolint:gochecknoglobals // CLI flag variable
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asttool",
		Short: "asttool: parse, match, patch, and convert trees written in the draft mini-language",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (accepted; no subcommand reads it)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (accepted; no subcommand changes its output)")

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(matchCmd())
	rootCmd.AddCommand(patchCmd())
	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "asttool (astcore)")
		},
	}
}
