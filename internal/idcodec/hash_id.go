// Package idcodec provides type-safe base-63 codecs for hash identities.
// It delegates to internal/encoding for the raw algorithm and adds the
// HashCode and MethodID wrappers the manifest and CLI layers use.
package idcodec

import (
	"github.com/standardbeagle/typehash/internal/encoding"
	"github.com/standardbeagle/typehash/internal/types"
)

// Re-export errors from the encoding package for use with errors.Is.
var (
	ErrEmptyString = encoding.ErrEmptyString
	ErrInvalidChar = encoding.ErrInvalidChar
	ErrOverflow    = encoding.ErrOverflow
)

// EncodeHash encodes a 32-bit hash as a base-63 string. The signed hash
// is encoded by bit pattern (zero-extended), so -1 and 0xFFFFFFFF are the
// same identity.
func EncodeHash(h types.HashCode) string {
	return encoding.Base63Encode(uint64(h.Bits()))
}

// DecodeHash decodes a base-63 string to a 32-bit hash.
// Returns ErrOverflow when the value does not fit in 32 bits.
func DecodeHash(encoded string) (types.HashCode, error) {
	value, err := encoding.Base63Decode(encoded)
	if err != nil {
		return 0, err
	}
	if value > 0xFFFFFFFF {
		return 0, ErrOverflow
	}
	return types.HashCode(uint32(value)), nil
}

// MustDecodeHash decodes a base-63 string to a 32-bit hash.
// Panics on error - use only when the input is known to be valid.
func MustDecodeHash(encoded string) types.HashCode {
	h, err := DecodeHash(encoded)
	if err != nil {
		panic("idcodec: MustDecodeHash: " + err.Error())
	}
	return h
}

// IsValidHash checks whether a string is a valid base-63 encoded 32-bit
// hash.
func IsValidHash(encoded string) bool {
	_, err := DecodeHash(encoded)
	return err == nil
}
