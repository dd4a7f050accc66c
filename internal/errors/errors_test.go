package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/typehash/internal/types"
)

func TestInputError_Message(t *testing.T) {
	err := NewInputError(ErrorTypeBadRank, "rank", "-3")
	assert.Contains(t, err.Error(), "rank")
	assert.Contains(t, err.Error(), "-3")
	assert.Contains(t, err.Error(), string(ErrorTypeBadRank))
}

func TestInputError_Unwrap(t *testing.T) {
	cause := stderrors.New("not a number")
	err := NewInputError(ErrorTypeBadLiteral, "hash", "xyz").WithUnderlying(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "not a number")

	var inputErr *InputError
	assert.True(t, stderrors.As(err, &inputErr))
	assert.Equal(t, ErrorTypeBadLiteral, inputErr.Type)
}

func TestManifestError_WithPath(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewManifestError(ErrorTypeManifestIO, "read", cause).WithPath("hashes.toml")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "hashes.toml")
	assert.Contains(t, err.Error(), "read")
}

func TestVerificationError_Message(t *testing.T) {
	err := &VerificationError{
		Kind:     types.KindName,
		Label:    "System.Object",
		Index:    3,
		Expected: types.HashCode(-1221019199),
		Actual:   types.HashCode(42),
	}
	assert.Contains(t, err.Error(), "System.Object")
	assert.Contains(t, err.Error(), "entry 3")
}
