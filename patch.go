package jot

import (
	"fmt"

	"github.com/jot-format/go-jot/eval"
	"github.com/jot-format/go-jot/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to doc and returns the
// patched tree. The patch document and its results must be representable
// in the format: patches that introduce numeric values fail with
// eval.ErrNumber, and strings containing '"' fail with eval.ErrString.
//
// The bridge to JSON passes through Go maps, so the returned tree's
// members are sorted by key rather than kept in doc's order.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	res, err := eval.UnmarshalJSON(out)
	if err != nil {
		return nil, fmt.Errorf("error reading patched document: %w", err)
	}
	return res, nil
}
