// Package encoding provides the low-level base-63 codec used to print
// hash identities compactly. It has no dependencies; idcodec layers the
// type-safe wrappers on top.
//
// Base-63 alphabet: A-Z (0-25), a-z (26-51), 0-9 (52-61), _ (62).
// A 32-bit hash encodes in at most 6 characters (vs 8 for hex), and the
// alphabet is filesystem- and identifier-safe.
package encoding

import (
	"errors"
	"fmt"
)

const (
	Base63     = 63
	Alphabet63 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"
)

var (
	ErrEmptyString = errors.New("empty encoded string")
	ErrInvalidChar = errors.New("invalid character in encoded string")
	ErrOverflow    = errors.New("decoded value overflow")
)

// Base63Encode encodes a uint64 value to a base-63 string.
// Zero encodes as "A", the minimum non-empty encoding.
func Base63Encode(value uint64) string {
	if value == 0 {
		return "A"
	}

	// uint64 needs at most 11 base-63 digits.
	var buf [11]byte
	pos := len(buf)
	for value > 0 {
		pos--
		buf[pos] = Alphabet63[value%Base63]
		value /= Base63
	}
	return string(buf[pos:])
}

// Base63Decode decodes a base-63 string to a uint64 value.
func Base63Decode(encoded string) (uint64, error) {
	if encoded == "" {
		return 0, ErrEmptyString
	}

	var value uint64
	for _, c := range encoded {
		digit, err := charToValue(c)
		if err != nil {
			return 0, err
		}
		if value > (^uint64(0)-digit)/Base63 {
			return 0, ErrOverflow
		}
		value = value*Base63 + digit
	}
	return value, nil
}

// Base63IsValid reports whether encoded is a well-formed base-63 string.
func Base63IsValid(encoded string) bool {
	if encoded == "" {
		return false
	}
	for _, c := range encoded {
		if _, err := charToValue(c); err != nil {
			return false
		}
	}
	return true
}

func charToValue(c rune) (uint64, error) {
	switch {
	case c >= 'A' && c <= 'Z':
		return uint64(c - 'A'), nil
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 26, nil
	case c >= '0' && c <= '9':
		return uint64(c-'0') + 52, nil
	case c == '_':
		return 62, nil
	default:
		return 0, fmt.Errorf("%w: %c", ErrInvalidChar, c)
	}
}

// PackUint32Pair packs two uint32 values into one uint64: lower in the
// low 32 bits, upper in the high 32 bits.
func PackUint32Pair(lower, upper uint32) uint64 {
	return uint64(lower) | uint64(upper)<<32
}

// UnpackUint32Pair splits a packed uint64 back into (lower, upper).
func UnpackUint32Pair(packed uint64) (lower, upper uint32) {
	return uint32(packed), uint32(packed >> 32)
}
