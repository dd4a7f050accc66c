// Package typehash computes the stable 32-bit identity hashes used for
// type, method, and signature records in native metadata images.
//
// Every function here is pure and deterministic: identical inputs yield
// the identical bit pattern on every platform, which is the compatibility
// contract between independently built producers and consumers of the
// format. All arithmetic runs on unsigned 32-bit values so overflow wraps
// the same way everywhere; results are reinterpreted as int32 at the API
// boundary. The functions hold no state and are safe for unsynchronized
// concurrent use.
package typehash

import (
	"fmt"
	"math/bits"
	"strconv"
	"unicode/utf16"
)

const (
	// AlgorithmVersion identifies the hash recipe in persisted artifacts.
	// Version 2 reads the odd byte of each pair at its own index in
	// ComputeASCIINameHash; version 1 re-read the even byte, which broke
	// hash agreement between the ASCII and UTF-16 spellings of a name.
	AlgorithmVersion = 2

	nameHashSeed = 0x6DA3B944

	pointerHashSalt = 0x12D0
	byrefHashSalt   = 0x4C85

	// Rank-1 arrays are modeled as instantiations of a well-known generic
	// type, so their base hash is that type's name hash. Locked by test
	// against ComputeNameHash("System.Array`1").
	sdArrayBaseHash = 0xD5313557

	methodVariableScale  = 0x7822381
	methodVariableOffset = 0x54872645
	typeVariableScale    = 0x5498341
	typeVariableOffset   = 0x832424
)

// ComputeNameHash returns the identity hash of a type or member name.
//
// The name is hashed as its sequence of UTF-16 code units (supplementary
// runes expand to surrogate pairs): two rolling accumulators advance over
// alternating units and are folded together at the end. Invalid UTF-8
// hashes as U+FFFD, per Go's range-over-string behavior, so the function
// is total over all string inputs. The empty name hashes to 0x115CFDB1.
func ComputeNameHash(name string) int32 {
	h1 := uint32(nameHashSeed)
	var h2 uint32
	odd := false

	step := func(unit uint16) {
		if odd {
			h2 = (h2 + rotl(h2, 5)) ^ uint32(unit)
		} else {
			h1 = (h1 + rotl(h1, 5)) ^ uint32(unit)
		}
		odd = !odd
	}

	for _, r := range name {
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			step(uint16(hi))
			step(uint16(lo))
		} else {
			step(uint16(r))
		}
	}

	h1 += rotl(h1, 8)
	h2 += rotl(h2, 8)
	return int32(h1 ^ h2)
}

// ComputeASCIINameHash hashes a raw name buffer one byte per code unit and
// reports whether every byte was ASCII. When isASCII is true the hash is
// bit-identical to ComputeNameHash over the same characters; the format
// treats the ASCII and UTF-16 spellings of a name as one identity, so
// callers may trust the hash only when isASCII is true.
func ComputeASCIINameHash(data []byte) (hash int32, isASCII bool) {
	h1 := uint32(nameHashSeed)
	var h2 uint32
	var mask byte

	for i := 0; i < len(data); i += 2 {
		b := data[i]
		mask |= b
		h1 = (h1 + rotl(h1, 5)) ^ uint32(b)
		if i+1 < len(data) {
			b = data[i+1]
			mask |= b
			h2 = (h2 + rotl(h2, 5)) ^ uint32(b)
		}
	}

	h1 += rotl(h1, 8)
	h2 += rotl(h2, 8)
	return int32(h1 ^ h2), mask&0x80 == 0
}

// ComputeArrayTypeHash combines an element type's hash with the array
// rank. Rank must be at least 1; anything else is a caller bug and panics.
func ComputeArrayTypeHash(elementHash int32, rank int) int32 {
	if rank < 1 {
		panic(fmt.Sprintf("typehash: ComputeArrayTypeHash: invalid rank %d", rank))
	}

	base := uint32(sdArrayBaseHash)
	if rank != 1 {
		base = uint32(ComputeNameHash("System.MDArrayRank" + strconv.Itoa(rank) + "`1"))
	}

	h := (base + rotl(base, 13)) ^ uint32(elementHash)
	return int32(h + rotl(h, 15))
}

// ComputePointerTypeHash derives the hash of a pointer type from the hash
// of its pointee.
func ComputePointerTypeHash(pointeeHash int32) int32 {
	h := uint32(pointeeHash)
	return int32((h + rotl(h, 5)) ^ pointerHashSalt)
}

// ComputeByrefTypeHash derives the hash of a byref type from the hash of
// the referenced parameter type. The salt and rotation differ from
// ComputePointerTypeHash so pointer-to-T and ref-to-T never share a hash
// for the same T.
func ComputeByrefTypeHash(parameterHash int32) int32 {
	h := uint32(parameterHash)
	return int32((h + rotl(h, 7)) ^ byrefHashSalt)
}

// ComputeNestedTypeHash combines an enclosing type's hash with the name
// hash of a type nested directly inside it. For deeper nesting, apply
// repeatedly from outermost to innermost; the combine is not associative,
// so that order is part of the identity.
func ComputeNestedTypeHash(enclosingHash, nestedNameHash int32) int32 {
	h := uint32(enclosingHash)
	return int32((h + rotl(h, 11)) ^ uint32(nestedNameHash))
}

// ComputeGenericInstanceHash folds the hashes of a generic definition's
// type arguments, in order, into the definition's hash. Argument order is
// significant: Pair<A,B> and Pair<B,A> hash differently. An empty argument
// list applies only the finalization step.
func ComputeGenericInstanceHash(definitionHash int32, argHashes []int32) int32 {
	h := uint32(definitionHash)
	for _, a := range argHashes {
		h = (h + rotl(h, 13)) ^ uint32(a)
	}
	return int32(h + rotl(h, 15))
}

// ComputeMethodHash combines a declaring type's hash with a method name
// (or name-with-signature) hash. The plain XOR is weaker than the other
// combinators but is frozen: persisted method hashes already use it, and
// changing it would orphan every existing image.
func ComputeMethodHash(typeHash, nameHash int32) int32 {
	return typeHash ^ nameHash
}

// ComputeSignatureVariableHash hashes a generic parameter reference by its
// zero-based index. Method-level and type-level parameters draw from two
// disjoint affine families so the same index never collides across the two
// levels. Arithmetic wraps mod 2^32. A negative index is a caller bug and
// panics.
func ComputeSignatureVariableHash(index int, method bool) int32 {
	if index < 0 {
		panic(fmt.Sprintf("typehash: ComputeSignatureVariableHash: negative index %d", index))
	}
	if method {
		return int32(uint32(index)*methodVariableScale + methodVariableOffset)
	}
	return int32(uint32(index)*typeVariableScale + typeVariableOffset)
}

// rotl rotates the 32-bit pattern of v left by shift bits. Bits shifted
// out the top re-enter at the bottom; nothing is discarded.
func rotl(v uint32, shift int) uint32 {
	return bits.RotateLeft32(v, shift)
}
