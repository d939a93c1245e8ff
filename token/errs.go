package token

import "errors"

var (
	ErrUnterminated  = errors.New("unterminated string")
	ErrUnknownSymbol = errors.New("unknown symbol")
)
