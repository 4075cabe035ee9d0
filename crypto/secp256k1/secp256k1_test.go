package secp256k1

import (
	"bytes"
	"encoding/hex"
	"io"
	"math/big"
	"testing"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/MetaMask/native-utils/crypto"
)

const (
	genPubKeyUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f817" +
		"98483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	genPubKeyCompressed = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	genAddress          = "7e5f4552091a69125d5dfcb7b8c2659029395bdf"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func scalar(t *testing.T, n *big.Int) []byte {
	t.Helper()
	b := make([]byte, PrivKeySize)
	n.FillBytes(b)
	return b
}

func TestValidateScalar(t *testing.T) {
	n := Order()

	cases := []struct {
		name   string
		scalar []byte
		err    error
	}{
		{"one", scalar(t, big.NewInt(1)), nil},
		{"order minus one", scalar(t, new(big.Int).Sub(n, big.NewInt(1))), nil},
		{"zero", make([]byte, PrivKeySize), crypto.ErrZeroScalar},
		{"order", curveOrder[:], crypto.ErrScalarOutOfRange},
		{"order plus one", scalar(t, new(big.Int).Add(n, big.NewInt(1))), crypto.ErrScalarOutOfRange},
		{"max", bytes.Repeat([]byte{0xFF}, PrivKeySize), crypto.ErrScalarOutOfRange},
		{"short", make([]byte, PrivKeySize-1), crypto.ErrLengthMismatch},
		{"long", make([]byte, PrivKeySize+1), crypto.ErrLengthMismatch},
		{"empty", nil, crypto.ErrLengthMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateScalar(tc.scalar)
			if tc.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestOrderMatchesTable(t *testing.T) {
	// The hard-coded order table must agree with the curve library.
	require.Equal(t, secp256k1.S256().N, Order())
}

func TestDerivePubKeyGenerator(t *testing.T) {
	one := scalar(t, big.NewInt(1))

	pub, err := DerivePubKey(one, false)
	require.NoError(t, err)
	require.Equal(t, fromHex(t, genPubKeyUncompressed), pub)
	require.Equal(t, byte(0x04), pub[0])

	pub, err = DerivePubKey(one, true)
	require.NoError(t, err)
	require.Equal(t, fromHex(t, genPubKeyCompressed), pub)
}

func TestDerivePubKeyCompressionPrefix(t *testing.T) {
	priv := GenPrivKey()

	uncompressed, err := DerivePubKey(priv, false)
	require.NoError(t, err)
	require.Len(t, uncompressed, PubKeySize)
	require.Equal(t, byte(0x04), uncompressed[0])

	compressed, err := DerivePubKey(priv, true)
	require.NoError(t, err)
	require.Len(t, compressed, PubKeySizeCompressed)
	require.Contains(t, []byte{0x02, 0x03}, compressed[0])

	// The prefix encodes the parity of y.
	wantPrefix := byte(0x02 + uncompressed[PubKeySize-1]&1)
	require.Equal(t, wantPrefix, compressed[0])

	// Both forms share the x coordinate.
	require.Equal(t, uncompressed[1:33], compressed[1:])
}

func TestSanitizePubKey(t *testing.T) {
	uncompressed := fromHex(t, genPubKeyUncompressed)
	compressed := fromHex(t, genPubKeyCompressed)
	raw := uncompressed[1:]

	// Raw passes through under either flag.
	for _, allow := range []bool{false, true} {
		got, err := SanitizePubKey(raw, allow)
		require.NoError(t, err)
		require.Equal(t, raw, got)
	}

	// The output never aliases the input.
	got, err := SanitizePubKey(raw, false)
	require.NoError(t, err)
	got[0] ^= 0xff
	require.Equal(t, fromHex(t, genPubKeyUncompressed)[1:], raw)

	// SEC1 forms need the flag.
	_, err = SanitizePubKey(uncompressed, false)
	require.ErrorIs(t, err, crypto.ErrLengthMismatch)
	_, err = SanitizePubKey(compressed, false)
	require.ErrorIs(t, err, crypto.ErrLengthMismatch)

	got, err = SanitizePubKey(uncompressed, true)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	got, err = SanitizePubKey(compressed, true)
	require.NoError(t, err)
	require.Equal(t, raw, got)
}

func TestSanitizePubKeyBadLengths(t *testing.T) {
	for _, n := range []int{0, 1, 20, 31, 32, 34, 63, 66, 100} {
		for _, allow := range []bool{false, true} {
			_, err := SanitizePubKey(make([]byte, n), allow)
			require.ErrorIs(t, err, crypto.ErrLengthMismatch, "length %d allow %v", n, allow)
		}
	}
}

func TestSanitizePubKeyInvalidPoint(t *testing.T) {
	// Compressed x = 2^256 - 1 is not a field element.
	bad := append([]byte{0x02}, bytes.Repeat([]byte{0xFF}, 32)...)
	_, err := SanitizePubKey(bad, true)
	require.ErrorIs(t, err, crypto.ErrInvalidEncoding)

	// Valid prefix over a garbage uncompressed body.
	bad = append([]byte{0x04}, bytes.Repeat([]byte{0x01}, 64)...)
	_, err = SanitizePubKey(bad, true)
	require.ErrorIs(t, err, crypto.ErrInvalidEncoding)
}

func TestAddressFromPubKey(t *testing.T) {
	uncompressed := fromHex(t, genPubKeyUncompressed)
	want := fromHex(t, genAddress)

	addr, err := AddressFromPubKey(uncompressed[1:], false)
	require.NoError(t, err)
	require.Equal(t, want, []byte(addr))

	addr, err = AddressFromPubKey(uncompressed, true)
	require.NoError(t, err)
	require.Equal(t, want, []byte(addr))

	addr, err = AddressFromPubKey(fromHex(t, genPubKeyCompressed), true)
	require.NoError(t, err)
	require.Equal(t, want, []byte(addr))

	_, err = AddressFromPubKey(uncompressed, false)
	require.ErrorIs(t, err, crypto.ErrLengthMismatch)
}

func TestPubKeySecp256k1Address(t *testing.T) {
	// Sanity check the PubKey type against the flat helper.
	pub := PubKey(fromHex(t, genPubKeyUncompressed))
	require.Equal(t, fromHex(t, genAddress), []byte(pub.Address()))
}

func TestPrivKeyPubKey(t *testing.T) {
	priv := GenPrivKey()
	pub := priv.PubKey()
	require.Len(t, pub.Bytes(), PubKeySize)
	require.Len(t, []byte(pub.Address()), crypto.AddressSize)
	require.True(t, priv.Equals(PrivKey(priv.Bytes())))
	require.False(t, priv.Equals(GenPrivKey()))
}

func TestGenPrivKey(t *testing.T) {
	for i := 0; i < 32; i++ {
		priv := GenPrivKey()
		require.NoError(t, ValidateScalar(priv))
	}
}

// notSoRand replays a fixed byte stream so the rejection-sampling loop can
// be driven through invalid candidates.
type notSoRand struct {
	r io.Reader
}

func (s *notSoRand) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func TestGenPrivKeyRejectsInvalidCandidates(t *testing.T) {
	// The stream first yields zero, then the order, then a valid scalar.
	valid := scalar(t, big.NewInt(0xBEEF))
	stream := append(make([]byte, PrivKeySize), curveOrder[:]...)
	stream = append(stream, valid...)

	priv := genPrivKey(&notSoRand{bytes.NewReader(stream)})
	require.Equal(t, valid, []byte(priv))
}

func TestGenPrivKeyFromSecret(t *testing.T) {
	secrets := [][]byte{nil, []byte("x"), []byte("some long secret phrase"), bytes.Repeat([]byte{0xAA}, 200)}
	for _, secret := range secrets {
		priv := GenPrivKeyFromSecret(secret)
		require.NoError(t, ValidateScalar(priv))
		require.Equal(t, []byte(priv), []byte(GenPrivKeyFromSecret(secret)))
	}
	require.NotEqual(t, GenPrivKeyFromSecret([]byte("a")), GenPrivKeyFromSecret([]byte("b")))
}
