package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup navigates a dotted path from y: object fields by name, array
// elements by decimal index. The empty path returns y itself.
func (y *Node) Lookup(path string) (*Node, error) {
	if path == "" {
		return y, nil
	}
	at := y
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, path)
		}
		switch at.Type {
		case ObjectType:
			next := at.Field(seg)
			if next == nil {
				return nil, fmt.Errorf("%w: no field %q", ErrPath, seg)
			}
			at = next
		case ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: array index %q", ErrPath, seg)
			}
			if i < 0 || i >= len(at.Values) {
				return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrPath, i, len(at.Values))
			}
			at = at.Values[i]
		default:
			return nil, fmt.Errorf("%w: cannot descend into %s at %q", ErrPath, at.Type, seg)
		}
	}
	return at, nil
}
