package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"lyre/interpreter-go/pkg/driver"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Manage program library dependencies",
}

var depsInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the dependencies listed in program.yml",
	Args:  cobra.NoArgs,
	RunE:  runDepsInstall,
}

func init() {
	depsCmd.AddCommand(depsInstallCmd)
}

func runDepsInstall(cmd *cobra.Command, args []string) error {
	manifest, err := driver.LoadManifest(manifestFileName)
	if err != nil {
		return err
	}
	modulesDir := filepath.Join(filepath.Dir(manifest.Path), driver.ModulesDirName)
	fetcher := driver.NewFetcher(modulesDir)
	paths, err := fetcher.InstallAll(manifest)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
