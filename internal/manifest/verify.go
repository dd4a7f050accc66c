package manifest

import (
	"fmt"

	"github.com/standardbeagle/typehash/internal/errors"
	"github.com/standardbeagle/typehash/internal/idcodec"
	"github.com/standardbeagle/typehash/internal/types"
	"github.com/standardbeagle/typehash/pkg/typehash"
)

// Result reports the outcome of verifying one manifest.
type Result struct {
	Checked    int
	Mismatches []*errors.VerificationError
}

// OK reports whether every entry matched recomputation.
func (r *Result) OK() bool { return len(r.Mismatches) == 0 }

// Verify recomputes every entry hash and compares it to the recorded
// value. References resolve against the recomputed hashes, so a single
// stale name surfaces as a mismatch on itself and on everything built
// from it. A fingerprint, when present, is checked against the recorded
// entries first; manifests from a different algorithm version are
// rejected outright since their hashes are not comparable.
func Verify(m *Manifest) (*Result, error) {
	if m.AlgorithmVersion != typehash.AlgorithmVersion {
		return nil, errors.NewManifestError(errors.ErrorTypeVerification, "verify",
			fmt.Errorf("manifest uses hash algorithm version %d, this tool computes version %d",
				m.AlgorithmVersion, typehash.AlgorithmVersion))
	}

	if m.Fingerprint != "" {
		if got := m.ComputeFingerprint(); got != m.Fingerprint {
			return nil, errors.NewManifestError(errors.ErrorTypeVerification, "verify",
				fmt.Errorf("fingerprint mismatch: recorded %s, recomputed %s (manifest edited or truncated)",
					m.Fingerprint, got))
		}
	}

	result := &Result{}
	symbols := make(map[string]types.HashCode, len(m.Entries))

	for i := range m.Entries {
		e := &m.Entries[i]

		recorded, err := idcodec.ParseHashLiteral(e.Hash)
		if err != nil {
			return nil, errors.NewManifestError(errors.ErrorTypeVerification, "verify",
				fmt.Errorf("entry %d (%s) has unreadable hash %q: %w", i, e.DisplayLabel(), e.Hash, err))
		}

		recomputed, err := recomputeEntry(e, symbols)
		if err != nil {
			return nil, errors.NewManifestError(errors.ErrorTypeVerification, "verify",
				fmt.Errorf("entry %d (%s): %w", i, e.DisplayLabel(), err))
		}

		result.Checked++
		if recomputed != recorded {
			result.Mismatches = append(result.Mismatches, &errors.VerificationError{
				Kind:     e.Kind,
				Label:    e.DisplayLabel(),
				Index:    i,
				Expected: recorded,
				Actual:   recomputed,
			})
		}

		if e.Label != "" {
			symbols[e.Label] = recomputed
		}
	}

	return result, nil
}

func recomputeEntry(e *Entry, symbols map[string]types.HashCode) (types.HashCode, error) {
	switch e.Kind {
	case types.KindName:
		return types.HashCode(typehash.ComputeNameHash(e.Name)), nil
	case types.KindASCIIName:
		hash, _ := typehash.ComputeASCIINameHash([]byte(e.Name))
		return types.HashCode(hash), nil
	default:
		return computeEntry(e, symbols)
	}
}
