package crypto

import (
	crand "crypto/rand"
	"io"
)

// CReader returns a crypto-strong randomness source, the OS CSPRNG.
func CReader() io.Reader {
	return crand.Reader
}

// CRandBytes returns numBytes of crypto-strong randomness. It panics if the
// OS randomness source fails; there is no sane way to continue generating
// keys without one.
func CRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	if _, err := crand.Read(b); err != nil {
		panic(err)
	}
	return b
}
