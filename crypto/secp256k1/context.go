package secp256k1

import (
	"fmt"
	"sync"

	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/MetaMask/native-utils/crypto"
)

// Context is the process-wide handle to the secp256k1 curve provider. It is
// built exactly once, on first use, and is read-only afterwards, so deriving,
// serializing and parsing may run concurrently without external locking.
type Context struct {
	curve *secp256k1.KoblitzCurve
}

var (
	ctxOnce  sync.Once
	curveCtx *Context
)

// ctx returns the shared curve context, initializing it on first call. The
// sync.Once guard guarantees concurrent first callers all observe the same
// fully-built context.
func ctx() *Context {
	ctxOnce.Do(func() {
		curveCtx = &Context{curve: secp256k1.S256()}
	})
	return curveCtx
}

// derive performs the point-scalar multiplication from seckey on the
// generator point. The scalar has already been through ValidateScalar; the
// provider's own range check here is a second line of defense, not a
// substitute.
func (c *Context) derive(seckey []byte) (*secp256k1.PublicKey, error) {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(seckey)
	if overflow {
		s.Zero()
		return nil, crypto.ErrScalarOutOfRange
	}
	if s.IsZero() {
		return nil, crypto.ErrZeroScalar
	}

	priv := secp256k1.NewPrivateKey(&s)
	pub := priv.PubKey()
	priv.Zero()
	s.Zero()
	return pub, nil
}

// serialize returns pub in SEC1 form: 33 bytes when compressed (0x02/0x03
// prefix by y-parity), 65 bytes otherwise (0x04 prefix). The byte count the
// provider actually produced is checked against the curve parameters so a
// misread provider contract fails loudly instead of yielding a short key.
func (c *Context) serialize(pub *secp256k1.PublicKey, compressed bool) ([]byte, error) {
	fieldBytes := (c.curve.Params().BitSize + 7) / 8

	var out []byte
	want := 2*fieldBytes + 1
	if compressed {
		want = fieldBytes + 1
		out = pub.SerializeCompressed()
	} else {
		out = pub.SerializeUncompressed()
	}
	if len(out) != want {
		return nil, fmt.Errorf("%w: provider wrote %d bytes, want %d", crypto.ErrSerializationLength, len(out), want)
	}
	return out, nil
}

// parse decodes a 33- or 65-byte SEC1 public key and validates that the
// point is on the curve. Any other length, and any x-coordinate that does
// not resolve to a curve point, is an invalid encoding.
func (c *Context) parse(pubKey []byte) (*secp256k1.PublicKey, error) {
	switch len(pubKey) {
	case PubKeySizeCompressed, PubKeySize:
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want %d or %d",
			crypto.ErrInvalidEncoding, len(pubKey), PubKeySizeCompressed, PubKeySize)
	}
	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidEncoding, err)
	}
	return pub, nil
}
