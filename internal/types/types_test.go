package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashCode_Bits(t *testing.T) {
	assert.Equal(t, uint32(0xFFFFFFFF), HashCode(-1).Bits())
	assert.Equal(t, uint32(0x7FFFFFFF), HashCode(1<<31-1).Bits())
	assert.Equal(t, int32(-1), HashCode(-1).HashCode())
}

func TestEntryKind_Valid(t *testing.T) {
	for _, k := range EntryKinds() {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, EntryKind("").Valid())
	assert.False(t, EntryKind("enum").Valid())
}
