package ed25519

import (
	"bytes"
	"crypto/subtle"
	"fmt"
	"io"

	ed25519voi "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/MetaMask/native-utils/crypto"
)

const (
	KeyType = "ed25519"

	// SeedSize is the length of an Ed25519 private-key seed.
	SeedSize = 32
	// PubKeySize is the length of an Ed25519 public key.
	PubKeySize = 32
)

// DerivePubKey expands the 32-byte seed into an Ed25519 keypair and returns
// the 32-byte public key. Every 32-byte seed is valid, all-zero included:
// the clamping step of the key expansion makes the result well defined, so
// there is no range check on this curve.
//
// The expanded 64-byte private key produced along the way is wiped before
// returning; only the public half leaves this function.
func DerivePubKey(seed []byte) ([]byte, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("%w: seed has %d bytes, want %d", crypto.ErrLengthMismatch, len(seed), SeedSize)
	}

	expanded := ed25519voi.NewKeyFromSeed(seed)
	defer crypto.Wipe(expanded)

	pub := make([]byte, PubKeySize)
	copy(pub, expanded[SeedSize:])
	return pub, nil
}

// -------------------------------------

var _ crypto.PrivKey = PrivKey{}

// PrivKey implements crypto.PrivKey. It holds the 32-byte seed, not the
// expanded form.
type PrivKey []byte

// Bytes returns the 32-byte seed.
func (privKey PrivKey) Bytes() []byte {
	return []byte(privKey)
}

// PubKey derives the public key for the seed.
func (privKey PrivKey) PubKey() crypto.PubKey {
	pub, err := DerivePubKey(privKey)
	if err != nil {
		panic(err)
	}
	return PubKey(pub)
}

// Equals - you probably don't need to use this.
// Runs in constant time based on length of the keys.
func (privKey PrivKey) Equals(other crypto.PrivKey) bool {
	if otherEd, ok := other.(PrivKey); ok {
		return subtle.ConstantTimeCompare(privKey[:], otherEd[:]) == 1
	}
	return false
}

func (PrivKey) Type() string {
	return KeyType
}

// GenPrivKey generates a new Ed25519 seed using OS randomness.
func GenPrivKey() PrivKey {
	return genPrivKey(crypto.CReader())
}

// genPrivKey generates a new Ed25519 seed using the provided reader.
func genPrivKey(rand io.Reader) PrivKey {
	seed := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, seed); err != nil {
		panic(err)
	}
	return PrivKey(seed)
}

// -------------------------------------

var _ crypto.PubKey = PubKey{}

// PubKey implements crypto.PubKey. The encoding is the curve's native
// 32-byte compressed point; there is no compressed/uncompressed distinction
// on this curve.
type PubKey []byte

// Address is the first 20 bytes of SHA-256 of the public key. Ed25519 keys
// have no keccak address convention, so the generic truncated-SHA form is
// used.
func (pubKey PubKey) Address() crypto.Address {
	if len(pubKey) != PubKeySize {
		panic(fmt.Sprintf("length of pubkey is incorrect %d != %d", len(pubKey), PubKeySize))
	}
	return crypto.Address(crypto.Sha256Truncated(pubKey))
}

// Bytes returns the 32-byte public key.
func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyEd25519{%X}", []byte(pubKey))
}

func (pubKey PubKey) Equals(other crypto.PubKey) bool {
	if otherEd, ok := other.(PubKey); ok {
		return bytes.Equal(pubKey[:], otherEd[:])
	}
	return false
}

func (PubKey) Type() string {
	return KeyType
}
