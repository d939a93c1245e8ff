package token

import (
	"fmt"
)

type TokenType int

const (
	TColon TokenType = iota
	TComma
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TString
	TLiteral
	TTrue
	TFalse
	TNull
	TEOF
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TColon:   "TColon",
		TComma:   "TComma",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TString:  "TString",
		TLiteral: "TLiteral",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
		TEOF:     "TEOF",
	}[t]
}

// Token is one classified unit of input. Bytes is a view into the
// tokenized buffer; for TString it includes the delimiting quotes.
// Tokens are immutable once produced.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String renders the token's lexeme. For TString the delimiting quotes
// are stripped; all other tokens render their bytes as-is.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	case TEOF:
		return ""
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnknownSymbol, what), p)
}
