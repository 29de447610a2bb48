// Kbd is a developer tool for keyboard layouts.
//
// It installs a keyboard into a container of a given size and prints the
// solved frames, the generated constraints, or a colored preview.
//
// Usage:
//
//	kbd frames       [flags]   Print every key frame
//	kbd constraints  [flags]   Print the generated constraints
//	kbd preview      [flags]   Render the keyboard in the terminal
//	kbd watch        [flags]   Re-render whenever --config changes
//	kbd version                Print version information
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kbd",
	Short: "Constraint layout for on-screen keyboards",
	Long: `Lays out an on-screen keyboard with linear constraints and shows the result.

The keyboard and its parameters come from the built-in layouts and defaults,
optionally overridden by a YAML, TOML or JSON file passed with --config.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kbd %s\n", version)
	},
}
