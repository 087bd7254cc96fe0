// Package commands provides the CLI commands for the lyre tool.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lyre",
	Short: "Lyre expression evaluator",
	Long: `Lyre evaluates expression trees produced by a Lyre front end.

This tool provides:
  - Evaluation of program documents (lyre run)
  - Evaluation of inline expression documents (lyre eval)
  - Dependency management for program libraries (lyre deps)

Programs are JSON expression trees; program.yml describes a project's
runnable programs and its git-sourced dependencies.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(versionCmd)
}
