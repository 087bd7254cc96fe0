package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const cliToolVersion = "lyre-cli 0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lyre tool version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), cliToolVersion)
	},
}
