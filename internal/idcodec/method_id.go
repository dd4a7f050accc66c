package idcodec

import (
	"github.com/standardbeagle/typehash/internal/encoding"
	"github.com/standardbeagle/typehash/internal/types"
)

// MethodID packing:
// - Lower 32 bits: declaring type hash
// - Upper 32 bits: method name (or name-with-signature) hash
//
// The combined XOR hash from the method combinator is deliberately weak,
// so manifests key method entries by this lossless composite instead and
// derive the XOR on demand.

// EncodeMethodID encodes a declaring type hash and method name hash into
// a single base-63 string.
func EncodeMethodID(typeHash, nameHash types.HashCode) string {
	packed := encoding.PackUint32Pair(typeHash.Bits(), nameHash.Bits())
	return encoding.Base63Encode(packed)
}

// DecodeMethodID decodes a base-63 string back to the (type hash, name
// hash) pair.
func DecodeMethodID(encoded string) (typeHash, nameHash types.HashCode, err error) {
	packed, err := encoding.Base63Decode(encoded)
	if err != nil {
		return 0, 0, err
	}
	lower, upper := encoding.UnpackUint32Pair(packed)
	return types.HashCode(lower), types.HashCode(upper), nil
}

// PackMethodID packs the pair into a raw types.MethodID.
func PackMethodID(typeHash, nameHash types.HashCode) types.MethodID {
	return types.MethodID(encoding.PackUint32Pair(typeHash.Bits(), nameHash.Bits()))
}

// UnpackMethodID splits a types.MethodID back into its two hashes.
func UnpackMethodID(id types.MethodID) (typeHash, nameHash types.HashCode) {
	lower, upper := encoding.UnpackUint32Pair(uint64(id))
	return types.HashCode(lower), types.HashCode(upper)
}
