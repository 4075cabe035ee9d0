package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	nativeutils "github.com/MetaMask/native-utils"
)

var (
	flagCurve        string
	flagUncompressed bool
	flagKeyFile      string
)

func init() {
	DeriveCmd.Flags().StringVar(&flagCurve, "curve", "secp256k1", "curve to derive on (secp256k1|ed25519)")
	DeriveCmd.Flags().BoolVar(&flagUncompressed, "uncompressed", false, "emit the 65-byte SEC1 uncompressed form (secp256k1 only)")
	DeriveCmd.Flags().StringVar(&flagKeyFile, "key-file", "", "read the private key hex from a file instead of the argument")
}

// DeriveCmd derives a public key from a private key given as bare hex.
var DeriveCmd = &cobra.Command{
	Use:   "derive [private-key-hex]",
	Short: "Derive the public key for a private key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  derive,
}

func derive(cmd *cobra.Command, args []string) error {
	keyHex, err := privKeyHex(args)
	if err != nil {
		return err
	}

	var pub []byte
	switch flagCurve {
	case "secp256k1":
		pub, err = nativeutils.DerivePublicKey(nativeutils.Hex(keyHex), !flagUncompressed)
	case "ed25519":
		if flagUncompressed {
			return fmt.Errorf("--uncompressed only applies to secp256k1")
		}
		pub, err = nativeutils.DeriveEd25519PublicKey(nativeutils.Hex(keyHex))
	default:
		return fmt.Errorf("unknown curve %q", flagCurve)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(pub))
	return nil
}

// privKeyHex resolves the key hex from the positional argument or, with
// --key-file, from the first line of the named file.
func privKeyHex(args []string) (string, error) {
	if flagKeyFile == "" {
		if len(args) != 1 {
			return "", fmt.Errorf("a private key argument or --key-file is required")
		}
		return args[0], nil
	}
	if len(args) != 0 {
		return "", fmt.Errorf("pass the key as an argument or via --key-file, not both")
	}
	data, err := os.ReadFile(flagKeyFile)
	if err != nil {
		return "", errors.Wrap(err, "reading key file")
	}
	return strings.TrimSpace(string(data)), nil
}
