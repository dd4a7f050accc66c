package typehash

// Hasher is the capability the combination functions require of external
// collaborators: any value able to yield its own 32-bit identity hash.
// Type-system objects (element types, pointees, generic arguments) satisfy
// it; this package never inspects them beyond the hash.
type Hasher interface {
	HashCode() int32
}

// HashCode is a plain int32 that satisfies Hasher, for callers that hold
// raw hash values but need to pass them through a Hasher-shaped API.
type HashCode int32

// HashCode returns the value itself.
func (h HashCode) HashCode() int32 { return int32(h) }

// HashCodes collects the hash of each value, preserving order.
func HashCodes(values []Hasher) []int32 {
	if len(values) == 0 {
		return nil
	}
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = v.HashCode()
	}
	return out
}

// ComputeGenericInstanceHashOf is ComputeGenericInstanceHash for callers
// holding collaborator objects rather than raw hashes.
func ComputeGenericInstanceHashOf(definition Hasher, args []Hasher) int32 {
	h := uint32(definition.HashCode())
	for _, a := range args {
		h = (h + rotl(h, 13)) ^ uint32(a.HashCode())
	}
	return int32(h + rotl(h, 15))
}

// ComputeArrayTypeHashOf is ComputeArrayTypeHash over a Hasher element.
func ComputeArrayTypeHashOf(element Hasher, rank int) int32 {
	return ComputeArrayTypeHash(element.HashCode(), rank)
}
