// Package nativeutils exposes the key-derivation and digest primitives of
// the module behind a single flat API. Private keys are accepted as hex
// strings, byte slices or integers (see KeyInput); outputs are plain byte
// slices so callers can pick their own presentation.
//
// All functions are deterministic and safe for concurrent use.
package nativeutils

import (
	"fmt"

	"github.com/MetaMask/native-utils/crypto"
	"github.com/MetaMask/native-utils/crypto/ed25519"
	"github.com/MetaMask/native-utils/crypto/hmac512"
	"github.com/MetaMask/native-utils/crypto/keccak"
	"github.com/MetaMask/native-utils/crypto/secp256k1"
)

// DerivePublicKey derives the secp256k1 public key for the given private
// key. With compressed set it returns the 33-byte SEC1 compressed encoding,
// otherwise the 65-byte uncompressed one. Identical keys in different input
// representations yield identical output.
func DerivePublicKey(privKey KeyInput, compressed bool) ([]byte, error) {
	seckey, err := privKey.normalize(secp256k1.PrivKeySize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(seckey)
	return secp256k1.DerivePubKey(seckey, compressed)
}

// DeriveEd25519PublicKey derives the 32-byte Ed25519 public key for the
// given seed. Any 32-byte value is a valid seed; integer inputs are not
// accepted for this curve.
func DeriveEd25519PublicKey(privKey KeyInput) ([]byte, error) {
	if privKey.kind == inputInt {
		return nil, fmt.Errorf("%w: integer keys are only defined for secp256k1", crypto.ErrUnsupportedInputType)
	}
	seed, err := privKey.normalize(ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(seed)
	return ed25519.DerivePubKey(seed)
}

// Keccak256 returns the 32-byte Keccak-256 digest of data.
func Keccak256(data []byte) []byte {
	return keccak.Sum256(data)
}

// Keccak256Hex hex-decodes the input and returns the Keccak-256 digest of
// the decoded bytes. The string is never hashed as text.
func Keccak256Hex(s string) ([]byte, error) {
	return keccak.Sum256Hex(s)
}

// HmacSha512 returns the 64-byte HMAC-SHA512 tag of data under key. Keys of
// any length are accepted per RFC 2104.
func HmacSha512(key, data []byte) []byte {
	return hmac512.Sum(key, data)
}

// AddressFromPublicKey computes the 20-byte address for a secp256k1 public
// key given in 64-byte raw form. With sanitize set, 33- and 65-byte SEC1
// encodings are accepted as well and converted to raw form first.
func AddressFromPublicKey(pubKey []byte, sanitize bool) ([]byte, error) {
	return secp256k1.AddressFromPubKey(pubKey, sanitize)
}
