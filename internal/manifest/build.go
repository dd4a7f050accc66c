package manifest

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/typehash/internal/errors"
	"github.com/standardbeagle/typehash/internal/idcodec"
	"github.com/standardbeagle/typehash/internal/types"
	"github.com/standardbeagle/typehash/pkg/typehash"
)

// Options controls manifest building.
type Options struct {
	Workers     int    // parallel name-hash workers; <= 0 means 1
	Fingerprint bool   // stamp the xxhash64 content fingerprint
	ToolVersion string // recorded verbatim
}

// refPrefix marks an operand that names an earlier entry instead of
// holding a hash literal.
const refPrefix = "ref:"

// Build computes the hash for every descriptor and returns the finished
// manifest. Name hashing fans out across workers; combinator entries are
// then resolved in order, so an operand may reference any entry that
// appears before it.
func Build(descriptors []Entry, opts Options) (*Manifest, error) {
	m := &Manifest{
		AlgorithmVersion: typehash.AlgorithmVersion,
		ToolVersion:      opts.ToolVersion,
		Entries:          make([]Entry, len(descriptors)),
	}
	copy(m.Entries, descriptors)

	if err := validateLabels(m.Entries); err != nil {
		return nil, err
	}
	if err := hashNames(m.Entries, opts.Workers); err != nil {
		return nil, err
	}
	if err := resolveCombinators(m.Entries); err != nil {
		return nil, err
	}

	if opts.Fingerprint {
		m.Fingerprint = m.ComputeFingerprint()
	}
	return m, nil
}

func validateLabels(entries []Entry) error {
	seen := make(map[string]int, len(entries))
	for i := range entries {
		e := &entries[i]
		if !e.Kind.Valid() {
			return errors.NewInputError(errors.ErrorTypeBadKind, "kind", string(e.Kind))
		}
		if e.Label == "" {
			continue
		}
		if prev, dup := seen[e.Label]; dup {
			return errors.NewInputError(errors.ErrorTypeBadKind, "label", e.Label).
				WithUnderlying(fmt.Errorf("already used by entry %d", prev))
		}
		seen[e.Label] = i
	}
	return nil
}

// hashNames computes every name-kind entry concurrently. Each goroutine
// writes only its own entry, so no locking is needed.
func hashNames(entries []Entry, workers int) error {
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for i := range entries {
		e := &entries[i]
		switch e.Kind {
		case types.KindName:
			g.Go(func() error {
				e.Hash = formatCanonical(types.HashCode(typehash.ComputeNameHash(e.Name)))
				return nil
			})
		case types.KindASCIIName:
			g.Go(func() error {
				hash, isASCII := typehash.ComputeASCIINameHash([]byte(e.Name))
				e.Hash = formatCanonical(types.HashCode(hash))
				e.ASCII = &isASCII
				return nil
			})
		}
	}
	return g.Wait()
}

// resolveCombinators evaluates the non-name entries in order, so refs can
// only point backwards.
func resolveCombinators(entries []Entry) error {
	symbols := make(map[string]types.HashCode, len(entries))

	for i := range entries {
		e := &entries[i]

		if e.Kind == types.KindName || e.Kind == types.KindASCIIName {
			recordSymbol(symbols, e)
			continue
		}

		hash, err := computeEntry(e, symbols)
		if err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.DisplayLabel(), err)
		}
		e.Hash = formatCanonical(hash)
		recordSymbol(symbols, e)
	}
	return nil
}

func recordSymbol(symbols map[string]types.HashCode, e *Entry) {
	if e.Label == "" {
		return
	}
	// Hash is always in canonical hex form here; a parse failure is a bug.
	h, err := idcodec.ParseHashLiteral(e.Hash)
	if err != nil {
		panic("manifest: non-canonical hash " + e.Hash)
	}
	symbols[e.Label] = h
}

func computeEntry(e *Entry, symbols map[string]types.HashCode) (types.HashCode, error) {
	switch e.Kind {
	case types.KindArray:
		if e.Rank < 1 {
			return 0, errors.NewInputError(errors.ErrorTypeBadRank, "rank", fmt.Sprint(e.Rank))
		}
		elem, err := resolveOperand(e.Element, "element", symbols)
		if err != nil {
			return 0, err
		}
		return types.HashCode(typehash.ComputeArrayTypeHash(int32(elem), e.Rank)), nil

	case types.KindPointer:
		pointee, err := resolveOperand(e.Pointee, "pointee", symbols)
		if err != nil {
			return 0, err
		}
		return types.HashCode(typehash.ComputePointerTypeHash(int32(pointee))), nil

	case types.KindByref:
		param, err := resolveOperand(e.Parameter, "parameter", symbols)
		if err != nil {
			return 0, err
		}
		return types.HashCode(typehash.ComputeByrefTypeHash(int32(param))), nil

	case types.KindNested:
		enclosing, err := resolveOperand(e.Enclosing, "enclosing", symbols)
		if err != nil {
			return 0, err
		}
		nested, err := resolveOperand(e.Nested, "nested", symbols)
		if err != nil {
			return 0, err
		}
		return types.HashCode(typehash.ComputeNestedTypeHash(int32(enclosing), int32(nested))), nil

	case types.KindGenericInstance:
		def, err := resolveOperand(e.Definition, "definition", symbols)
		if err != nil {
			return 0, err
		}
		args := make([]int32, len(e.Args))
		for i, arg := range e.Args {
			a, err := resolveOperand(arg, fmt.Sprintf("args[%d]", i), symbols)
			if err != nil {
				return 0, err
			}
			args[i] = int32(a)
		}
		return types.HashCode(typehash.ComputeGenericInstanceHash(int32(def), args)), nil

	case types.KindMethod:
		typeHash, err := resolveOperand(e.Type, "type", symbols)
		if err != nil {
			return 0, err
		}
		nameHash, err := resolveOperand(e.MethodName, "method_name", symbols)
		if err != nil {
			return 0, err
		}
		e.MethodID = idcodec.EncodeMethodID(typeHash, nameHash)
		return types.HashCode(typehash.ComputeMethodHash(int32(typeHash), int32(nameHash))), nil

	case types.KindVariable:
		if e.Index < 0 {
			return 0, errors.NewInputError(errors.ErrorTypeBadIndex, "index", fmt.Sprint(e.Index))
		}
		return types.HashCode(typehash.ComputeSignatureVariableHash(e.Index, e.MethodLevel)), nil
	}

	return 0, errors.NewInputError(errors.ErrorTypeBadKind, "kind", string(e.Kind))
}

// resolveOperand turns an operand string into a hash: either a backward
// reference to a labeled entry or a hash literal.
func resolveOperand(operand, field string, symbols map[string]types.HashCode) (types.HashCode, error) {
	if operand == "" {
		return 0, errors.NewInputError(errors.ErrorTypeBadLiteral, field, "").
			WithUnderlying(fmt.Errorf("operand is required"))
	}
	if label, ok := strings.CutPrefix(operand, refPrefix); ok {
		h, found := symbols[label]
		if !found {
			return 0, errors.NewInputError(errors.ErrorTypeBadLiteral, field, operand).
				WithUnderlying(fmt.Errorf("no earlier entry labeled %q", label))
		}
		return h, nil
	}

	h, err := idcodec.ParseHashLiteral(operand)
	if err != nil {
		return 0, errors.NewInputError(errors.ErrorTypeBadLiteral, field, operand).WithUnderlying(err)
	}
	return h, nil
}

func formatCanonical(h types.HashCode) string {
	return idcodec.FormatHash(h, idcodec.FormatHex)
}
