package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lyre/interpreter-go/pkg/codec"
	"lyre/interpreter-go/pkg/driver"
	"lyre/interpreter-go/pkg/interpreter"
	"lyre/interpreter-go/pkg/runtime"
)

const manifestFileName = "program.yml"

var runCmd = &cobra.Command{
	Use:   "run [program|file.lyre.json]",
	Short: "Evaluate a Lyre program",
	Long: `Run evaluates a program document and prints its result.

With no argument the default program from program.yml is used. An argument
names either a manifest program or a JSON document on disk.

Examples:
  lyre run                      # Run the manifest's default program
  lyre run tests                # Run the manifest program named "tests"
  lyre run fact.lyre.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	entry, err := resolveEntry(args)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(entry)
	if err != nil {
		return fmt.Errorf("read %s: %w", entry, err)
	}
	return evaluateDocument(cmd, data)
}

func resolveEntry(args []string) (string, error) {
	manifest, manifestErr := driver.LoadManifest(manifestFileName)
	if manifestErr != nil && !errors.Is(manifestErr, os.ErrNotExist) {
		return "", manifestErr
	}

	if len(args) == 0 {
		if manifest == nil {
			return "", fmt.Errorf("lyre run requires a program argument (%s not found)", manifestFileName)
		}
		spec, err := manifest.DefaultProgram()
		if err != nil {
			return "", err
		}
		return manifest.EntryPath(spec), nil
	}

	if manifest != nil {
		if spec, ok := manifest.FindProgram(args[0]); ok {
			return manifest.EntryPath(spec), nil
		}
	}
	if _, err := os.Stat(args[0]); err != nil {
		return "", fmt.Errorf("no program or file named %q", args[0])
	}
	return args[0], nil
}

func evaluateDocument(cmd *cobra.Command, data []byte) error {
	expr, err := codec.Decode(data)
	if err != nil {
		return err
	}
	interp := interpreter.NewWithSay(cmd.ErrOrStderr())
	val, err := interp.Evaluate(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), runtime.Render(val))
	return nil
}
