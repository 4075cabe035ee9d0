package crypto

import "errors"

// Error kinds shared by the packages under crypto/. Call sites wrap these
// with fmt.Errorf and %w to add detail; error messages describe the violated
// constraint and never echo private-key bytes.
var (
	// ErrUnsupportedInputType is returned when key material is presented in a
	// shape other than a bare hex string, a byte slice, or an integer.
	ErrUnsupportedInputType = errors.New("unsupported input type")

	// ErrInvalidHex is returned for odd-length hex strings or strings
	// containing a non-hex digit. A 0x prefix counts as two non-hex digits.
	ErrInvalidHex = errors.New("invalid hex encoding")

	// ErrLengthMismatch is returned when a buffer does not have the exact
	// length an operation requires.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrZeroScalar is returned for the all-zero secp256k1 private key.
	ErrZeroScalar = errors.New("private key scalar is zero")

	// ErrNegativeScalar is returned for negative integer private keys.
	ErrNegativeScalar = errors.New("private key scalar is negative")

	// ErrScalarOutOfRange is returned for secp256k1 private keys >= the group
	// order N.
	ErrScalarOutOfRange = errors.New("private key scalar is not in the curve range")

	// ErrInvalidEncoding is returned for public key bytes that do not parse
	// as a valid point encoding.
	ErrInvalidEncoding = errors.New("invalid public key encoding")

	// ErrSerializationLength is returned when the curve provider writes a
	// different number of bytes than the requested form calls for. Seeing it
	// means the provider contract is misunderstood, not that the input was
	// bad.
	ErrSerializationLength = errors.New("serialized public key has unexpected length")
)
