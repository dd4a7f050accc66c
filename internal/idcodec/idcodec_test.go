package idcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/typehash/internal/encoding"
	"github.com/standardbeagle/typehash/internal/types"
)

func TestEncodeHash_BitPattern(t *testing.T) {
	// Negative hashes encode by bit pattern, not numeric value.
	assert.Equal(t, encoding.Base63Encode(0xFFFFFFFF), EncodeHash(types.HashCode(-1)))
	assert.Equal(t, "A", EncodeHash(0))
}

func TestHash_RoundTrip(t *testing.T) {
	hashes := []types.HashCode{0, 1, -1, 0x115CFDB1, -718195369, 1<<31 - 1, -1 << 31}
	for _, h := range hashes {
		decoded, err := DecodeHash(EncodeHash(h))
		require.NoError(t, err)
		assert.Equal(t, h, decoded)
	}
}

func TestDecodeHash_Errors(t *testing.T) {
	_, err := DecodeHash("")
	assert.ErrorIs(t, err, ErrEmptyString)

	_, err = DecodeHash("bad id")
	assert.ErrorIs(t, err, ErrInvalidChar)

	// Values wider than 32 bits are valid base-63 but not valid hashes.
	_, err = DecodeHash(EncodeMethodID(types.HashCode(-1), types.HashCode(1)))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestMustDecodeHash(t *testing.T) {
	h := types.HashCode(0x12345678)
	assert.Equal(t, h, MustDecodeHash(EncodeHash(h)))
	assert.Panics(t, func() { MustDecodeHash("!!!") })
}

func TestIsValidHash(t *testing.T) {
	assert.True(t, IsValidHash(EncodeHash(types.HashCode(-42))))
	assert.False(t, IsValidHash(""))
	assert.False(t, IsValidHash("no spaces allowed"))
}

func TestMethodID_RoundTrip(t *testing.T) {
	tests := []struct {
		name               string
		typeHash, nameHash types.HashCode
	}{
		{"zero pair", 0, 0},
		{"positive pair", 0x1234, 0x5678},
		{"negative pair", -718195369, 432871842},
		{"extremes", -1 << 31, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th, nh, err := DecodeMethodID(EncodeMethodID(tc.typeHash, tc.nameHash))
			require.NoError(t, err)
			assert.Equal(t, tc.typeHash, th)
			assert.Equal(t, tc.nameHash, nh)
		})
	}
}

func TestMethodID_PackUnpack(t *testing.T) {
	id := PackMethodID(types.HashCode(-1221019199), types.HashCode(432871842))
	th, nh := UnpackMethodID(id)
	assert.Equal(t, types.HashCode(-1221019199), th)
	assert.Equal(t, types.HashCode(432871842), nh)
}
