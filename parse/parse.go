package parse

import (
	"fmt"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// Parse tokenizes d and runs recursive descent over the token sequence,
// returning the document's IR tree. The grammar requires a single object
// at the top level.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, opts: pOpts}
	res, err := p.document()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %s\n", err)
		}
		return nil, err
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// parser owns a cursor into one token sequence for the duration of one
// parse. The cursor only moves forward; next() parks on TEOF.
type parser struct {
	toks  []token.Token
	pos   int
	depth int
	opts  *parseOpts
}

func (p *parser) peek() *token.Token {
	return &p.toks[p.pos]
}

func (p *parser) next() *token.Token {
	t := &p.toks[p.pos]
	if t.Type != token.TEOF {
		p.pos++
	}
	return t
}

func (p *parser) at(tt token.TokenType) bool {
	return p.toks[p.pos].Type == tt
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) push(pos *token.Pos) error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return fmt.Errorf("%w: %w (max %d) %s", ErrParse, ErrDepth, p.opts.maxDepth, pos)
	}
	return nil
}

func (p *parser) pop() {
	p.depth--
}

// document parses Document → Object and requires end of input after it.
func (p *parser) document() (*ir.Node, error) {
	t := p.next()
	switch t.Type {
	case token.TLCurl:
	case token.TEOF:
		return nil, fmt.Errorf("%w: %w", ErrParse, ErrEmptyDoc)
	case token.TString, token.TLiteral, token.TTrue, token.TFalse, token.TNull:
		return nil, fmt.Errorf("%w: %w %q %s", ErrParse, ErrTopLevel, string(t.Bytes), t.Pos)
	default:
		return nil, fmt.Errorf("%w: %w %q %s", ErrParse, ErrSymbol, string(t.Bytes), t.Pos)
	}
	obj, err := p.object(t.Pos)
	if err != nil {
		return nil, err
	}
	if !p.at(token.TEOF) {
		rest := p.peek()
		return nil, fmt.Errorf("%w: %w %q %s", ErrParse, ErrTrailing, string(rest.Bytes), rest.Pos)
	}
	return obj, nil
}

// object parses the remainder of an object after its '{' has been
// consumed, including the closing '}'.
func (p *parser) object(open *token.Pos) (*ir.Node, error) {
	if err := p.push(open); err != nil {
		return nil, err
	}
	defer p.pop()
	objY := &ir.Node{Type: ir.ObjectType}
	p.trackPos(objY, open)
	if p.at(token.TRCurl) {
		p.next()
		return ir.FromKeyValsAt(objY, nil), nil
	}
	kvs := []ir.KeyVal{}
	for {
		keyTok := p.next()
		var key *ir.Node
		switch keyTok.Type {
		case token.TString, token.TLiteral:
			key = ir.FromString(keyTok.String())
			p.trackPos(key, keyTok.Pos)
		case token.TEOF:
			return nil, fmt.Errorf("%w: %w %s", ErrParse, ErrBrace, keyTok.Pos)
		case token.TColon, token.TComma, token.TLCurl, token.TLSquare, token.TRSquare:
			return nil, fmt.Errorf("%w: %w %q %s", ErrParse, ErrSymbol, string(keyTok.Bytes), keyTok.Pos)
		default:
			return nil, fmt.Errorf("%w: %w %q %s", ErrParse, ErrKey, string(keyTok.Bytes), keyTok.Pos)
		}
		colTok := p.next()
		if colTok.Type != token.TColon {
			return nil, fmt.Errorf("%w: %w expected ':' got %q %s", ErrParse, ErrSymbol, string(colTok.Bytes), colTok.Pos)
		}
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		// a comma always announces another member, so the loop
		// re-enters key parsing and a trailing comma fails there
		if p.at(token.TComma) {
			p.next()
			continue
		}
		break
	}
	end := p.next()
	if end.Type != token.TRCurl {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, ErrBrace, end.Pos)
	}
	return ir.FromKeyValsAt(objY, kvs), nil
}

// value parses Value → String | Identifier | Boolean | Null | Object | Array.
func (p *parser) value() (*ir.Node, error) {
	t := p.next()
	switch t.Type {
	case token.TString, token.TLiteral:
		sy := ir.FromString(t.String())
		p.trackPos(sy, t.Pos)
		return sy, nil
	case token.TTrue:
		b := ir.FromBool(true)
		p.trackPos(b, t.Pos)
		return b, nil
	case token.TFalse:
		b := ir.FromBool(false)
		p.trackPos(b, t.Pos)
		return b, nil
	case token.TNull:
		res := ir.Null()
		p.trackPos(res, t.Pos)
		return res, nil
	case token.TLCurl:
		return p.object(t.Pos)
	case token.TLSquare:
		return p.array(t.Pos)
	default:
		return nil, fmt.Errorf("%w: %w %q %s", ErrParse, ErrValue, string(t.Bytes), t.Pos)
	}
}

// array parses the remainder of an array after its '[' has been
// consumed, including the closing ']'.
func (p *parser) array(open *token.Pos) (*ir.Node, error) {
	if err := p.push(open); err != nil {
		return nil, err
	}
	defer p.pop()
	arrY := &ir.Node{Type: ir.ArrayType}
	p.trackPos(arrY, open)
	if p.at(token.TRSquare) {
		p.next()
		return arrY, nil
	}
	for {
		elt, err := p.value()
		if err != nil {
			return nil, err
		}
		elt.Parent = arrY
		elt.ParentIndex = len(arrY.Values)
		arrY.Values = append(arrY.Values, elt)
		// same shape as the member loop: a comma always announces
		// another element, so a trailing comma fails in value()
		if p.at(token.TComma) {
			p.next()
			continue
		}
		break
	}
	end := p.next()
	if end.Type != token.TRSquare {
		return nil, fmt.Errorf("%w: %w %s", ErrParse, ErrBracket, end.Pos)
	}
	return arrY, nil
}
