// crypto is the key-derivation core of native-utils.
//
// It normalizes private-key material into canonical byte buffers, derives and
// serializes public keys on two curve families, and computes hash-based
// addresses from public keys. The elliptic-curve arithmetic itself is
// delegated to the decred secp256k1 and curve25519-voi providers; this
// package tree only enforces the format and numeric contracts around them.
//
// Keys:
//
// All key generation functions return an instance of the PrivKey interface
// which implements methods:
//
//	type PrivKey interface {
//		Bytes() []byte
//		PubKey() PubKey
//		Equals(PrivKey) bool
//		Type() string
//	}
//
// From the above method we can retrieve the public key if needed:
//
//	privKey := secp256k1.GenPrivKey()
//	pubKey := privKey.PubKey()
//
// The resulting public key is an instance of the PubKey interface:
//
//	type PubKey interface {
//		Address() Address
//		Bytes() []byte
//		Equals(PubKey) bool
//		Type() string
//	}
//
// Signing and signature verification are deliberately absent: this module
// only derives keys and addresses.
package crypto
