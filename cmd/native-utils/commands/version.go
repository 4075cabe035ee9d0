package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MetaMask/native-utils/version"
)

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version())
	},
}
