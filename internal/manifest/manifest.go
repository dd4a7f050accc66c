// Package manifest implements the persisted hash manifest: a TOML
// document recording metadata entities, their inputs, and their computed
// identity hashes. Producers build manifests; consumers verify that the
// recorded hashes still match recomputation, which is how bit-for-bit
// stability of the recipe is checked across builds and platforms.
package manifest

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/standardbeagle/typehash/internal/errors"
	"github.com/standardbeagle/typehash/internal/types"
)

// Entry is one manifest record: the descriptor fields the producer
// supplied plus the computed outputs. Operand fields (Element, Pointee,
// Definition, ...) hold hash literals or "ref:<label>" references to
// earlier entries.
type Entry struct {
	Kind  types.EntryKind `toml:"kind"`
	Label string          `toml:"label,omitempty"`

	// name and ascii-name kinds
	Name string `toml:"name,omitempty"`

	// array kind
	Element string `toml:"element,omitempty"`
	Rank    int    `toml:"rank,omitempty"`

	// pointer and byref kinds
	Pointee   string `toml:"pointee,omitempty"`
	Parameter string `toml:"parameter,omitempty"`

	// nested kind
	Enclosing string `toml:"enclosing,omitempty"`
	Nested    string `toml:"nested,omitempty"`

	// generic kind
	Definition string   `toml:"definition,omitempty"`
	Args       []string `toml:"args,omitempty"`

	// method kind
	Type       string `toml:"type,omitempty"`
	MethodName string `toml:"method_name,omitempty"`

	// sigvar kind
	Index       int  `toml:"index,omitempty"`
	MethodLevel bool `toml:"method_level,omitempty"`

	// Outputs, filled by Build.
	Hash     string `toml:"hash,omitempty"`      // canonical 0x%08X form
	MethodID string `toml:"method_id,omitempty"` // method kind only
	ASCII    *bool  `toml:"ascii,omitempty"`     // ascii-name kind only
}

// DisplayLabel returns the label used in diagnostics: the explicit label,
// else the name, else the kind.
func (e *Entry) DisplayLabel() string {
	if e.Label != "" {
		return e.Label
	}
	if e.Name != "" {
		return e.Name
	}
	return string(e.Kind)
}

// Manifest is the persisted document.
type Manifest struct {
	AlgorithmVersion int    `toml:"algorithm_version"`
	ToolVersion      string `toml:"tool_version,omitempty"`
	Fingerprint      string `toml:"fingerprint,omitempty"`

	Entries []Entry `toml:"entry"`
}

// ComputeFingerprint returns the xxhash64 content fingerprint over the
// canonical entry serialization. Two manifests with equal fingerprints
// carry identical hash sets, which lets consumers skip entry-by-entry
// comparison when diffing builds.
func (m *Manifest) ComputeFingerprint() string {
	digest := xxhash.New()
	fmt.Fprintf(digest, "v%d\n", m.AlgorithmVersion)
	for _, e := range m.Entries {
		fmt.Fprintf(digest, "%s|%s|%s\n", e.Kind, e.DisplayLabel(), e.Hash)
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}

// Read loads a manifest from disk.
func Read(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewManifestError(errors.ErrorTypeManifestIO, "read", err).WithPath(path)
	}
	return Decode(content)
}

// Decode parses manifest TOML.
func Decode(content []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(content, &m); err != nil {
		return nil, errors.NewManifestError(errors.ErrorTypeManifestDecode, "decode", err)
	}
	return &m, nil
}

// Write stores the manifest to disk.
func (m *Manifest) Write(path string) error {
	content, err := m.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.NewManifestError(errors.ErrorTypeManifestIO, "write", err).WithPath(path)
	}
	return nil
}

// Encode renders the manifest as TOML.
func (m *Manifest) Encode() ([]byte, error) {
	content, err := toml.Marshal(m)
	if err != nil {
		return nil, errors.NewManifestError(errors.ErrorTypeManifestDecode, "encode", err)
	}
	return content, nil
}
