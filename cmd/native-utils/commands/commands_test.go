package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return strings.TrimSpace(out.String())
}

func TestDeriveCmd(t *testing.T) {
	defer func() { flagCurve, flagUncompressed, flagKeyFile = "secp256k1", false, "" }()

	privHex := strings.Repeat("00", 31) + "01"

	got := runCmd(t, DeriveCmd, privHex)
	require.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", got)

	got = runCmd(t, DeriveCmd, "--uncompressed", privHex)
	require.Equal(t,
		"0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f817"+
			"98483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", got)
}

func TestDeriveCmdEd25519(t *testing.T) {
	defer func() { flagCurve, flagUncompressed, flagKeyFile = "secp256k1", false, "" }()

	got := runCmd(t, DeriveCmd, "--curve", "ed25519", strings.Repeat("00", 32))
	require.Equal(t, "3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29", got)
}

func TestDeriveCmdKeyFile(t *testing.T) {
	defer func() { flagCurve, flagUncompressed, flagKeyFile = "secp256k1", false, "" }()

	keyFile := t.TempDir() + "/key.hex"
	privHex := strings.Repeat("00", 31) + "01"
	require.NoError(t, os.WriteFile(keyFile, []byte(privHex+"\n"), 0o600))

	got := runCmd(t, DeriveCmd, "--key-file", keyFile)
	require.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", got)
}

func TestAddressCmd(t *testing.T) {
	defer func() { flagSanitize = false }()

	compressed := "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

	got := runCmd(t, AddressCmd, "--sanitize", compressed)
	require.Equal(t, "7e5f4552091a69125d5dfcb7b8c2659029395bdf", got)

	var out bytes.Buffer
	AddressCmd.SetOut(&out)
	flagSanitize = false
	AddressCmd.SetArgs([]string{compressed})
	require.Error(t, AddressCmd.Execute())
}

func TestKeccakCmd(t *testing.T) {
	defer func() { flagText = false }()

	got := runCmd(t, KeccakCmd, "616263")
	require.Equal(t, "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45", got)

	got = runCmd(t, KeccakCmd, "--text", "abc")
	require.Equal(t, "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45", got)
}

func TestHmacCmd(t *testing.T) {
	got := runCmd(t, HmacCmd,
		"6b6579", // "key"
		"54686520717569636b2062726f776e20666f78206a756d7073206f76657220746865206c617a7920646f67")
	require.Equal(t,
		"b42af09057bac1e2d41708e48a902e09b5ff7f12ab428a4fe86653c73dd248fb"+
			"82f948a549f7b791a5b41915ee4d1ec3935357e4e2317250d0372afa2ebeeb3a", got)
}

func TestGenKeyCmd(t *testing.T) {
	defer func() { genKeyCurve = "secp256k1" }()

	out := runCmd(t, GenKeyCmd)
	require.Contains(t, out, "private:")
	require.Contains(t, out, "public:")

	out = runCmd(t, GenKeyCmd, "--curve", "ed25519")
	require.Contains(t, out, "private:")
}
