package secp256k1

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/MetaMask/native-utils/crypto"
)

const (
	KeyType = "secp256k1"

	// PrivKeySize defines the length of the PrivKey byte array.
	PrivKeySize = 32
	// PubKeySize, in SEC1 uncompressed format, is comprised of 65 bytes for
	// two field elements (x and y) and a prefix byte (0x04).
	PubKeySize = 65
	// PubKeySizeCompressed is the SEC1 compressed format: a parity prefix
	// byte (0x02/0x03) followed by the x field element.
	PubKeySizeCompressed = 33
	// PubKeySizeRaw is x || y with no prefix byte, the canonical pre-hash
	// form for address derivation.
	PubKeySizeRaw = 64
)

// curveOrder is the secp256k1 group order N, big-endian. Valid private key
// scalars lie in [1, N-1].
var curveOrder = [PrivKeySize]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE,
	0xBA, 0xAE, 0xDC, 0xE6, 0xAF, 0x48, 0xA0, 0x3B,
	0xBF, 0xD2, 0x5E, 0x8C, 0xD0, 0x36, 0x41, 0x41,
}

// Order returns the group order N as a fresh big.Int.
func Order() *big.Int {
	return new(big.Int).SetBytes(curveOrder[:])
}

// ValidateScalar checks that b is a 32-byte scalar in [1, N-1]. It must run
// before the scalar reaches the curve context. The range comparison is a
// big-endian byte comparison against the order table, not a numeric cast.
func ValidateScalar(b []byte) error {
	if len(b) != PrivKeySize {
		return fmt.Errorf("%w: private key has %d bytes, want %d", crypto.ErrLengthMismatch, len(b), PrivKeySize)
	}

	allZero := true
	for _, c := range b {
		if c != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return crypto.ErrZeroScalar
	}

	if !scalarBelowOrder(b) {
		return crypto.ErrScalarOutOfRange
	}
	return nil
}

// scalarBelowOrder reports whether the 32-byte big-endian scalar b is
// strictly less than the group order N.
func scalarBelowOrder(b []byte) bool {
	for i := 0; i < PrivKeySize; i++ {
		if b[i] < curveOrder[i] {
			return true
		}
		if b[i] > curveOrder[i] {
			return false
		}
	}
	return false // equal to N
}

// DerivePubKey derives the public key for the given private scalar and
// serializes it in SEC1 form: 33 bytes when compressed is true, 65 bytes
// otherwise. Any failure short-circuits; no partial result is returned.
func DerivePubKey(seckey []byte, compressed bool) ([]byte, error) {
	if err := ValidateScalar(seckey); err != nil {
		return nil, err
	}
	c := ctx()
	pub, err := c.derive(seckey)
	if err != nil {
		return nil, err
	}
	return c.serialize(pub, compressed)
}

// SanitizePubKey normalizes a public key to the 64-byte raw x || y form.
//
// A 64-byte input passes through (copied). With allowNonRaw set, 33- and
// 65-byte SEC1 inputs are parsed, re-serialized uncompressed and stripped of
// the 0x04 prefix; bytes that fail to parse as a curve point are rejected
// rather than coerced. Every other length fails regardless of allowNonRaw.
func SanitizePubKey(pubKey []byte, allowNonRaw bool) ([]byte, error) {
	if len(pubKey) == PubKeySizeRaw {
		out := make([]byte, PubKeySizeRaw)
		copy(out, pubKey)
		return out, nil
	}
	if !allowNonRaw {
		return nil, fmt.Errorf("%w: public key has %d bytes, want %d",
			crypto.ErrLengthMismatch, len(pubKey), PubKeySizeRaw)
	}
	switch len(pubKey) {
	case PubKeySizeCompressed, PubKeySize:
	default:
		return nil, fmt.Errorf("%w: public key has %d bytes, want %d, %d or %d",
			crypto.ErrLengthMismatch, len(pubKey), PubKeySizeCompressed, PubKeySizeRaw, PubKeySize)
	}

	c := ctx()
	pub, err := c.parse(pubKey)
	if err != nil {
		return nil, err
	}
	uncompressed, err := c.serialize(pub, false)
	if err != nil {
		return nil, err
	}
	return uncompressed[1:], nil
}

// AddressFromPubKey returns the Ethereum-style address of pubKey:
// Last_20_Bytes(Keccak256(x || y)). With sanitize set, 33- and 65-byte SEC1
// encodings are accepted and normalized first; otherwise pubKey must already
// be the 64-byte raw form.
func AddressFromPubKey(pubKey []byte, sanitize bool) (crypto.Address, error) {
	raw, err := SanitizePubKey(pubKey, sanitize)
	if err != nil {
		return nil, err
	}
	return crypto.Address(ethcrypto.Keccak256(raw)[12:]), nil
}

// -------------------------------------

var _ crypto.PrivKey = PrivKey{}

// PrivKey implements crypto.PrivKey.
type PrivKey []byte

// Bytes returns the raw 32-byte private scalar.
func (privKey PrivKey) Bytes() []byte {
	return []byte(privKey)
}

// PubKey performs the point-scalar multiplication from the privKey on the
// generator point to get the pubkey. It returns the uncompressed form; use
// DerivePubKey directly when the compressed form is needed.
func (privKey PrivKey) PubKey() crypto.PubKey {
	pub, err := DerivePubKey(privKey, false)
	if err != nil {
		panic(err)
	}
	return PubKey(pub)
}

// Equals - you probably don't need to use this.
// Runs in constant time based on length of the keys.
func (privKey PrivKey) Equals(other crypto.PrivKey) bool {
	if otherSecp, ok := other.(PrivKey); ok {
		return subtle.ConstantTimeCompare(privKey[:], otherSecp[:]) == 1
	}
	return false
}

func (PrivKey) Type() string {
	return KeyType
}

// GenPrivKey generates a new ECDSA private key on curve secp256k1 private key.
// It uses OS randomness to generate the private key.
func GenPrivKey() PrivKey {
	return genPrivKey(crypto.CReader())
}

// genPrivKey generates a new secp256k1 private key using the provided reader,
// rejection-sampling until the bytes are a valid field element.
func genPrivKey(rand io.Reader) PrivKey {
	var privKeyBytes [PrivKeySize]byte
	d := new(big.Int)

	for {
		privKeyBytes = [PrivKeySize]byte{}
		_, err := io.ReadFull(rand, privKeyBytes[:])
		if err != nil {
			panic(err)
		}

		d.SetBytes(privKeyBytes[:])
		// break if we found a valid point (i.e. > 0 and < N == curveOrder)
		isValidFieldElement := 0 < d.Sign() && d.Cmp(secp256k1.S256().N) < 0
		if isValidFieldElement {
			break
		}
	}
	d.SetInt64(0)

	return PrivKey(privKeyBytes[:])
}

var one = new(big.Int).SetInt64(1)

// GenPrivKeyFromSecret hashes the secret with SHA-256, and uses that 32-byte
// output to create the private key.
//
// It makes sure the private key is a valid field element by setting:
//
// c = sha256(secret)
// k = (c mod (n − 1)) + 1, where n = curve order.
//
// NOTE: secret should be the output of a KDF like bcrypt,
// if it's derived from user input.
func GenPrivKeyFromSecret(secret []byte) PrivKey {
	secHash := crypto.Sha256(secret)

	fe := new(big.Int).SetBytes(secHash)
	n := new(big.Int).Sub(secp256k1.S256().N, one)
	fe.Mod(fe, n)
	fe.Add(fe, one)

	privKey32 := make([]byte, PrivKeySize)
	fe.FillBytes(privKey32)
	fe.SetInt64(0)
	crypto.Wipe(secHash)

	return PrivKey(privKey32)
}

// -------------------------------------

var _ crypto.PubKey = PubKey{}

// PubKey implements crypto.PubKey.
// It is the uncompressed form of the pubkey. The first byte is prefixed with
// 0x04. This prefix is followed with the (x,y)-coordinates.
type PubKey []byte

// Address returns an Ethereum style address: Last_20_Bytes(Keccak256(pubkey[1:])).
func (pubKey PubKey) Address() crypto.Address {
	if len(pubKey) != PubKeySize {
		panic(fmt.Sprintf("length of pubkey is incorrect %d != %d", len(pubKey), PubKeySize))
	}
	return crypto.Address(ethcrypto.Keccak256(pubKey[1:])[12:])
}

// Bytes returns the 65-byte SEC1 uncompressed encoding.
func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%X}", []byte(pubKey))
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

func (PubKey) Type() string {
	return KeyType
}
