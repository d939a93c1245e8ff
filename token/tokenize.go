package token

import (
	"github.com/jot-format/go-jot/debug"
)

type tokenOpts struct {
	lenient bool
}

type TokenOpt func(*tokenOpts)

// Lenient lets an unterminated string end at the buffer boundary instead
// of producing ErrUnterminated.
func Lenient() TokenOpt {
	return func(o *tokenOpts) { o.lenient = true }
}

// Tokenize scans src left to right and appends the resulting tokens to
// dst. The returned sequence is non-empty and always ends with a TEOF
// token. Token bytes alias src.
//
// An unrecognized byte yields a *TokenizeErr naming the byte and its
// position; no tokens are returned in that case.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{}
	for _, o := range opts {
		o(opt)
	}
	posDoc := &PosDoc{d: src}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++
			continue
		case ' ', '\t', '\r', '\v', '\f':
			i++
			continue
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case '"':
			j, err := scanQuoted(src[i:], opt.lenient)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i : i+j]})
			i += j
		default:
			if !isLiteralByte(c) {
				return nil, UnexpectedErr(string(src[i:i+1]), posDoc.Pos(i))
			}
			lit := scanLiteral(src[i:])
			dst = append(dst, literalToken(lit, posDoc.Pos(i)))
			i += len(lit)
		}
	}
	dst = append(dst, Token{Type: TEOF, Pos: posDoc.end()})
	if debug.Tokens() {
		PrintTokens(dst, "tokenize")
	}
	return dst, nil
}
