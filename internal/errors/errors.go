// Package errors defines the typed error families for the typehash tool.
// The core library panics on programmer-error preconditions; everything
// user-facing (CLI operands, descriptor files, manifests) flows through
// these types so callers can branch with errors.Is/As.
package errors

import (
	"fmt"

	"github.com/standardbeagle/typehash/internal/types"
)

// ErrorType classifies errors for reporting
type ErrorType string

const (
	// Input errors
	ErrorTypeBadLiteral ErrorType = "bad_literal"
	ErrorTypeBadRank    ErrorType = "bad_rank"
	ErrorTypeBadIndex   ErrorType = "bad_index"
	ErrorTypeBadKind    ErrorType = "bad_kind"

	// Manifest errors
	ErrorTypeManifestIO     ErrorType = "manifest_io"
	ErrorTypeManifestDecode ErrorType = "manifest_decode"
	ErrorTypeVerification   ErrorType = "verification"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// InputError represents an invalid user-supplied value at the tool
// boundary (CLI operand or descriptor field).
type InputError struct {
	Type       ErrorType
	Field      string
	Value      string
	Underlying error
}

// NewInputError creates an input error for a named field
func NewInputError(errType ErrorType, field, value string) *InputError {
	return &InputError{Type: errType, Field: field, Value: value}
}

// WithUnderlying attaches the cause
func (e *InputError) WithUnderlying(err error) *InputError {
	e.Underlying = err
	return e
}

// Error implements the error interface
func (e *InputError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Underlying)
	}
	return fmt.Sprintf("invalid %s %q (%s)", e.Field, e.Value, e.Type)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *InputError) Unwrap() error {
	return e.Underlying
}

// ManifestError represents a failure reading, writing, or verifying a
// hash manifest.
type ManifestError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
}

// NewManifestError creates a manifest error with operation context
func NewManifestError(errType ErrorType, op string, err error) *ManifestError {
	return &ManifestError{Type: errType, Operation: op, Underlying: err}
}

// WithPath adds the manifest path to the error
func (e *ManifestError) WithPath(path string) *ManifestError {
	e.Path = path
	return e
}

// Error implements the error interface
func (e *ManifestError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("manifest %s failed for %s: %v", e.Operation, e.Path, e.Underlying)
	}
	return fmt.Sprintf("manifest %s failed: %v", e.Operation, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ManifestError) Unwrap() error {
	return e.Underlying
}

// VerificationError reports a single manifest entry whose recorded hash
// does not match recomputation.
type VerificationError struct {
	Kind     types.EntryKind
	Label    string
	Index    int
	Expected types.HashCode
	Actual   types.HashCode
}

// Error implements the error interface
func (e *VerificationError) Error() string {
	return fmt.Sprintf("verification failed for %s entry %d (%s): recorded %#08x, recomputed %#08x",
		e.Kind, e.Index, e.Label, uint32(e.Expected), uint32(e.Actual))
}
