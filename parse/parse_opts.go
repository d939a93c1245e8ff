package parse

import (
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// DefaultMaxDepth bounds object/array nesting when no MaxDepth option is
// given. Recursion depth tracks nesting depth, so the bound also keeps
// hostile inputs from exhausting the call stack.
const DefaultMaxDepth = 1024

type parseOpts struct {
	maxDepth  int
	lenient   bool
	positions map[*ir.Node]*token.Pos
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.lenient {
		return []token.TokenOpt{token.Lenient()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the default nesting bound.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// LenientStrings lets an unterminated string end at the buffer boundary
// instead of failing tokenization.
func LenientStrings() ParseOption {
	return func(o *parseOpts) { o.lenient = true }
}

// Positions records the source position of each parsed node in m.
func Positions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
