package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var evalExpr string

var evalCmd = &cobra.Command{
	Use:   "eval -e '<json>'",
	Short: "Evaluate an inline expression document",
	Long: `Eval evaluates a single JSON expression document and prints its result.

With no -e flag the document is read from stdin.

Examples:
  lyre eval -e '{"type":"NumberLiteral","value":42}'
  lyrec example.lyre | lyre eval`,
	Args: cobra.NoArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalExpr, "expr", "e", "", "JSON expression document to evaluate")
}

func runEval(cmd *cobra.Command, args []string) error {
	data := []byte(evalExpr)
	if evalExpr == "" {
		stdin, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		data = stdin
	}
	return evaluateDocument(cmd, data)
}
