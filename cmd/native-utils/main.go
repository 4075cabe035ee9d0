package main

import (
	"os"

	cmd "github.com/MetaMask/native-utils/cmd/native-utils/commands"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.DeriveCmd,
		cmd.AddressCmd,
		cmd.KeccakCmd,
		cmd.HmacCmd,
		cmd.GenKeyCmd,
		cmd.VersionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
