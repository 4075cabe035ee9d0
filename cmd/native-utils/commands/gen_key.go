package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MetaMask/native-utils/crypto/ed25519"
	"github.com/MetaMask/native-utils/crypto/secp256k1"
)

var genKeyCurve string

func init() {
	GenKeyCmd.Flags().StringVar(&genKeyCurve, "curve", "secp256k1", "curve to generate a key for (secp256k1|ed25519)")
}

// GenKeyCmd generates a fresh private key from OS randomness and prints the
// key and its public key as hex. The private key goes to stdout on purpose;
// redirect it somewhere safe.
var GenKeyCmd = &cobra.Command{
	Use:     "gen-key",
	Aliases: []string{"gen_key"},
	Short:   "Generate a new private key and print it with its public key",
	Args:    cobra.NoArgs,
	RunE:    genKey,
}

func genKey(cmd *cobra.Command, _ []string) error {
	var priv, pub []byte
	switch genKeyCurve {
	case "secp256k1":
		k := secp256k1.GenPrivKey()
		priv, pub = k.Bytes(), k.PubKey().Bytes()
	case "ed25519":
		k := ed25519.GenPrivKey()
		priv, pub = k.Bytes(), k.PubKey().Bytes()
	default:
		return fmt.Errorf("unknown curve %q", genKeyCurve)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "private:", hex.EncodeToString(priv))
	fmt.Fprintln(cmd.OutOrStdout(), "public: ", hex.EncodeToString(pub))
	return nil
}
