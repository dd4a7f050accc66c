// Package types holds the small shared definitions used across the
// typehash packages. It has no dependencies; every other package may
// import it.
package types

// HashCode is a 32-bit identity hash as persisted in metadata images.
// The signed representation matches the stored form; bit pattern, not
// numeric value, is the identity.
type HashCode int32

// Bits returns the hash as its raw unsigned bit pattern.
func (h HashCode) Bits() uint32 { return uint32(h) }

// HashCode satisfies the typehash.Hasher capability.
func (h HashCode) HashCode() int32 { return int32(h) }

// MethodID packs a declaring type hash (lower 32 bits) and a method name
// hash (upper 32 bits) into a single identity, mirroring how method
// records are keyed in manifests.
type MethodID uint64

// EntryKind names the metadata entity a hash identifies.
type EntryKind string

const (
	KindName            EntryKind = "name"
	KindASCIIName       EntryKind = "ascii-name"
	KindArray           EntryKind = "array"
	KindPointer         EntryKind = "pointer"
	KindByref           EntryKind = "byref"
	KindNested          EntryKind = "nested"
	KindGenericInstance EntryKind = "generic"
	KindMethod          EntryKind = "method"
	KindVariable        EntryKind = "sigvar"
)

// Valid reports whether k is one of the known entry kinds.
func (k EntryKind) Valid() bool {
	switch k {
	case KindName, KindASCIIName, KindArray, KindPointer, KindByref,
		KindNested, KindGenericInstance, KindMethod, KindVariable:
		return true
	}
	return false
}

// EntryKinds lists every kind in manifest order.
func EntryKinds() []EntryKind {
	return []EntryKind{
		KindName, KindASCIIName, KindArray, KindPointer, KindByref,
		KindNested, KindGenericInstance, KindMethod, KindVariable,
	}
}
