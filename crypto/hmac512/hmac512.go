// Package hmac512 provides single-shot HMAC-SHA-512.
package hmac512

import (
	"crypto/hmac"
	"crypto/sha512"
)

const (
	// Size is the MAC length in bytes.
	Size = sha512.Size
	// BlockSize is the block size of the underlying hash. Keys longer than
	// this are hashed down to the digest size first; shorter keys are
	// zero-padded.
	BlockSize = sha512.BlockSize
)

// Sum returns the HMAC-SHA-512 of data under key. There are no length
// limits on either argument; the whole buffer is consumed in one shot.
func Sum(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data) // never returns an error
	return mac.Sum(nil)
}
