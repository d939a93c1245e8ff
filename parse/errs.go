package parse

import (
	"errors"

	"github.com/jot-format/go-jot/ir"
)

// ErrParse is the base error wrapped by every parse failure.
var ErrParse = ir.ErrParse

var (
	// ErrEmptyDoc: no object at all, the input is empty or whitespace.
	ErrEmptyDoc = errors.New("empty document")
	// ErrTopLevel: the top-level token is a value but not an object.
	ErrTopLevel = errors.New("invalid top-level value")
	// ErrSymbol: a structural token where the grammar forbids one.
	ErrSymbol = errors.New("unexpected symbol")
	// ErrKey: a member key that is neither a string nor an identifier.
	ErrKey = errors.New("invalid object key")
	// ErrValue: a value position holds an unparsable token.
	ErrValue = errors.New("invalid value")
	// ErrBrace: object body well-formed but '}' absent.
	ErrBrace = errors.New("missing closing brace")
	// ErrBracket: array body well-formed but ']' absent.
	ErrBracket = errors.New("missing closing bracket")
	// ErrTrailing: tokens remain after the top-level object.
	ErrTrailing = errors.New("trailing data after document")
	// ErrDepth: nesting beyond the configured maximum.
	ErrDepth = errors.New("nesting too deep")
)
