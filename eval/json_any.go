package eval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// ErrNumber marks a Go or JSON value with no IR representation: the
// format has no numeric variant.
var ErrNumber = errors.New("numeric values are not representable")

// ErrString marks a string with no IR representation: the format has no
// escape sequences, so a string containing '"' cannot be written.
var ErrString = errors.New("strings containing '\"' are not representable")

func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}

// UnmarshalJSON parses JSON into an IR tree. Numeric values in the input
// yield ErrNumber; strings containing '"' yield ErrString.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToAny converts an IR tree to plain Go values: map[string]any, []any,
// string, bool, nil.
func ToAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i := range node.Values {
			res[i] = ToAny(node.Values[i])
		}
		return res
	case ir.StringType:
		return node.String
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("type")
	}
}

// FromAny converts plain Go values to an IR tree. IR nodes pass through
// cloned; numeric values and strings the format cannot write are
// rejected.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x.Clone(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		if !token.CanQuote(x) {
			return nil, fmt.Errorf("%w: %q", ErrString, x)
		}
		return ir.FromString(x), nil
	case []any:
		elts := make([]*ir.Node, len(x))
		for i := range x {
			elt, err := FromAny(x[i])
			if err != nil {
				return nil, err
			}
			elts[i] = elt
		}
		return ir.FromSlice(elts), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, xv := range x {
			val, err := FromAny(xv)
			if err != nil {
				return nil, err
			}
			m[k] = val
		}
		return ir.FromMap(m), nil
	case json.Number, int, int64, float64, float32:
		return nil, fmt.Errorf("%w: %v", ErrNumber, x)
	default:
		return nil, fmt.Errorf("cannot represent %T", v)
	}
}
