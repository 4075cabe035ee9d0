package crypto

import (
	"github.com/minio/sha256-simd"
)

// Sha256 returns the SHA-256 digest of bz.
func Sha256(bz []byte) []byte {
	hasher := sha256.New()
	hasher.Write(bz)
	return hasher.Sum(nil)
}

// Sha256Truncated returns the first AddressSize bytes of the SHA-256 digest
// of bz. It is the address form for curves that have no keccak address
// convention.
func Sha256Truncated(bz []byte) []byte {
	return Sha256(bz)[:AddressSize]
}
