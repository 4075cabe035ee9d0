// Package keccak exposes the Keccak-256 digest with the original (pre-FIPS)
// padding rule used by Ethereum.
//
// This is not SHA3-256: the two differ in the domain-separation padding
// byte (0x01 vs 0x06), and an address derived with the wrong one matches
// nothing on any deployed chain.
package keccak

import (
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/MetaMask/native-utils/crypto"
)

// Size is the digest length in bytes.
const Size = 32

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) []byte {
	return ethcrypto.Keccak256(data)
}

// Sum256Hex hex-decodes data and returns the Keccak-256 digest of the
// decoded bytes. The string must be bare hex: even length, no 0x prefix,
// upper or lower case digits. Callers hashing text should use
// Sum256([]byte(s)) instead; this entry point never treats its argument as
// UTF-8.
func Sum256Hex(data string) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string", crypto.ErrInvalidHex)
	}
	raw, err := hex.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidHex, err)
	}
	return ethcrypto.Keccak256(raw), nil
}
