package idcodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/standardbeagle/typehash/internal/types"
)

// Output format names accepted by FormatHash. These mirror the config
// package's format constants; idcodec stays below config in the layering.
const (
	FormatHex     = "hex"
	FormatBase63  = "base63"
	FormatDecimal = "decimal"
)

// ParseHashLiteral parses a 32-bit hash written as hex ("0xD5313557"),
// decimal (possibly negative), or base-63 ("b63:DlMNVX"). Hex and
// non-negative decimal accept the full unsigned 32-bit range and are
// reinterpreted by bit pattern.
func ParseHashLiteral(s string) (types.HashCode, error) {
	if rest, ok := strings.CutPrefix(s, "b63:"); ok {
		h, err := DecodeHash(rest)
		if err != nil {
			return 0, fmt.Errorf("bad base-63 hash literal %q: %w", s, err)
		}
		return h, nil
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad hash literal %q: expected hex, decimal, or b63: form", s)
	}
	if v < -1<<31 || v > 0xFFFFFFFF {
		return 0, fmt.Errorf("hash literal %q does not fit in 32 bits", s)
	}
	return types.HashCode(uint32(v)), nil
}

// FormatHash renders h in the given output format. Unknown formats fall
// back to hex.
func FormatHash(h types.HashCode, format string) string {
	switch format {
	case FormatBase63:
		return "b63:" + EncodeHash(h)
	case FormatDecimal:
		return strconv.FormatInt(int64(int32(h)), 10)
	default:
		return fmt.Sprintf("0x%08X", h.Bits())
	}
}
