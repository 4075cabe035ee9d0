package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	nativeutils "github.com/MetaMask/native-utils"
	"github.com/MetaMask/native-utils/crypto"
)

// HmacCmd computes an HMAC-SHA512 tag over hex-encoded key and data.
var HmacCmd = &cobra.Command{
	Use:   "hmac <key-hex> <data-hex>",
	Short: "HMAC-SHA512 tag of the given key and data",
	Args:  cobra.ExactArgs(2),
	RunE:  hmacSha512,
}

func hmacSha512(cmd *cobra.Command, args []string) error {
	key, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("%w: key: %v", crypto.ErrInvalidHex, err)
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		return fmt.Errorf("%w: data: %v", crypto.ErrInvalidHex, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(nativeutils.HmacSha512(key, data)))
	return nil
}
