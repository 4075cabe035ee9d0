package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	nativeutils "github.com/MetaMask/native-utils"
	"github.com/MetaMask/native-utils/crypto"
)

var flagSanitize bool

func init() {
	AddressCmd.Flags().BoolVar(&flagSanitize, "sanitize", false, "also accept 33- and 65-byte SEC1 encodings")
}

// AddressCmd computes the 20-byte address for a secp256k1 public key.
var AddressCmd = &cobra.Command{
	Use:   "address <public-key-hex>",
	Short: "Compute the address of a secp256k1 public key",
	Long: `Compute the 20-byte address of a secp256k1 public key:
the last 20 bytes of Keccak256(x || y).

The key must be the 64-byte raw x || y encoding, or with --sanitize a
33-byte compressed or 65-byte uncompressed SEC1 encoding.`,
	Args: cobra.ExactArgs(1),
	RunE: address,
}

func address(cmd *cobra.Command, args []string) error {
	pub, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", crypto.ErrInvalidHex, err)
	}

	addr, err := nativeutils.AddressFromPublicKey(pub, flagSanitize)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(addr))
	return nil
}
