package crypto

import "runtime"

// Wipe zeroes b. Private-key and expanded-secret buffers must be wiped on
// every exit path before they are released. This is best-effort: the
// noinline directive and KeepAlive reduce the chance of the compiler eliding
// the writes.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
