package idcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/typehash/internal/types"
)

func TestParseHashLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected types.HashCode
	}{
		{"0", 0},
		{"42", 42},
		{"-1", -1},
		{"0x12345678", 0x12345678},
		{"0xD5313557", types.HashCode(-718195369)},
		{"0xFFFFFFFF", -1},
		{"-2147483648", -1 << 31},
		{"4294967295", -1},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			h, err := ParseHashLiteral(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, h)
		})
	}
}

func TestParseHashLiteral_Base63(t *testing.T) {
	want := types.HashCode(-718195369)
	h, err := ParseHashLiteral("b63:" + EncodeHash(want))
	require.NoError(t, err)
	assert.Equal(t, want, h)
}

func TestParseHashLiteral_Errors(t *testing.T) {
	for _, input := range []string{"", "xyz", "0x1FFFFFFFF", "4294967296", "-2147483649", "b63:", "b63:!!"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseHashLiteral(input)
			assert.Error(t, err)
		})
	}
}

func TestFormatHash(t *testing.T) {
	h := types.HashCode(-718195369) // 0xD5313557

	assert.Equal(t, "0xD5313557", FormatHash(h, FormatHex))
	assert.Equal(t, "-718195369", FormatHash(h, FormatDecimal))
	assert.Equal(t, "b63:"+EncodeHash(h), FormatHash(h, FormatBase63))
	// Unknown format falls back to hex.
	assert.Equal(t, "0xD5313557", FormatHash(h, "octal"))
}

func TestFormatHash_RoundTripsThroughParse(t *testing.T) {
	hashes := []types.HashCode{0, 1, -1, 0x7FFFFFFF, -1 << 31, 291306929}
	for _, h := range hashes {
		for _, format := range []string{FormatHex, FormatBase63, FormatDecimal} {
			parsed, err := ParseHashLiteral(FormatHash(h, format))
			require.NoError(t, err, "format %s", format)
			assert.Equal(t, h, parsed)
		}
	}
}
