package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	nativeutils "github.com/MetaMask/native-utils"
)

var flagText bool

func init() {
	KeccakCmd.Flags().BoolVar(&flagText, "text", false, "hash the argument as UTF-8 text instead of hex")
}

// KeccakCmd hashes its argument with Keccak-256 (pre-FIPS padding, the
// Ethereum variant, not SHA3-256).
var KeccakCmd = &cobra.Command{
	Use:   "keccak <hex>",
	Short: "Keccak-256 digest of the given hex bytes",
	Args:  cobra.ExactArgs(1),
	RunE:  keccak,
}

func keccak(cmd *cobra.Command, args []string) error {
	var digest []byte
	if flagText {
		digest = nativeutils.Keccak256([]byte(args[0]))
	} else {
		var err error
		digest, err = nativeutils.Keccak256Hex(args[0])
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(digest))
	return nil
}
