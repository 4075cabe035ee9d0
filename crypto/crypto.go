package crypto

import (
	cmtbytes "github.com/MetaMask/native-utils/libs/bytes"
)

// AddressSize is the length in bytes of every address this module produces,
// regardless of the curve the underlying key lives on.
const AddressSize = 20

// Address is a hash of a public key, truncated to AddressSize bytes.
// For secp256k1 keys it is the Ethereum convention:
// Last_20_Bytes(Keccak256(x || y)).
type Address = cmtbytes.HexBytes

// PrivKey is private-key material for one curve.
type PrivKey interface {
	Bytes() []byte
	PubKey() PubKey
	Equals(PrivKey) bool
	Type() string
}

// PubKey is a derived or parsed public key.
type PubKey interface {
	Address() Address
	Bytes() []byte
	Equals(PubKey) bool
	Type() string
}
