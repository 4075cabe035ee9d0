package nativeutils

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/MetaMask/native-utils/crypto"
	"github.com/MetaMask/native-utils/crypto/secp256k1"
)

// inputKind tags the accepted private-key representations.
type inputKind int

const (
	inputInvalid inputKind = iota
	inputHex
	inputRaw
	inputInt
)

// KeyInput carries a private key in one of the accepted shapes: a bare hex
// string, a byte slice, or an arbitrary-precision integer. The zero value is
// invalid; build one with Hex, Raw or Int.
type KeyInput struct {
	kind inputKind
	hex  string
	raw  []byte
	num  *big.Int
}

// Hex wraps a bare hex string. A 0x/0X prefix is not stripped anywhere in
// this module; it reads as two invalid hex digits and is rejected.
func Hex(s string) KeyInput {
	return KeyInput{kind: inputHex, hex: s}
}

// Raw wraps a byte slice. The bytes are copied during normalization; the
// caller's slice is never retained.
func Raw(b []byte) KeyInput {
	return KeyInput{kind: inputRaw, raw: b}
}

// Int wraps a non-negative integer. Integer inputs are only defined for
// secp256k1 private keys.
func Int(n *big.Int) KeyInput {
	return KeyInput{kind: inputInt, num: n}
}

// normalize resolves the input into a fresh size-byte big-endian buffer or
// a typed error. It has no side effects on the input.
//
// Integer inputs are range-checked against the secp256k1 group order here,
// at the boundary, so an out-of-range value never reaches point arithmetic
// in any representation.
func (in KeyInput) normalize(size int) ([]byte, error) {
	switch in.kind {
	case inputHex:
		if len(in.hex)%2 != 0 {
			return nil, fmt.Errorf("%w: odd-length hex string", crypto.ErrInvalidHex)
		}
		b, err := hex.DecodeString(in.hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidHex, err)
		}
		if len(b) != size {
			return nil, fmt.Errorf("%w: key decodes to %d bytes, want %d", crypto.ErrLengthMismatch, len(b), size)
		}
		return b, nil

	case inputRaw:
		if len(in.raw) != size {
			return nil, fmt.Errorf("%w: key has %d bytes, want %d", crypto.ErrLengthMismatch, len(in.raw), size)
		}
		out := make([]byte, size)
		copy(out, in.raw)
		return out, nil

	case inputInt:
		if in.num == nil {
			return nil, fmt.Errorf("%w: nil integer", crypto.ErrUnsupportedInputType)
		}
		if in.num.Sign() < 0 {
			return nil, crypto.ErrNegativeScalar
		}
		if in.num.Sign() == 0 {
			return nil, crypto.ErrZeroScalar
		}
		if in.num.Cmp(secp256k1.Order()) >= 0 {
			return nil, crypto.ErrScalarOutOfRange
		}
		out := make([]byte, size)
		in.num.FillBytes(out)
		return out, nil

	default:
		return nil, fmt.Errorf("%w: key must be a hex string, a byte slice or an integer", crypto.ErrUnsupportedInputType)
	}
}
