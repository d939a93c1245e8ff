package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
}

func TestTokenize(t *testing.T) {
	pts := []tokTest{
		{
			in:    ``,
			types: []TokenType{TEOF},
		},
		{
			in:    " \t\r\n \v\f",
			types: []TokenType{TEOF},
		},
		{
			in:    `{}`,
			types: []TokenType{TLCurl, TRCurl, TEOF},
		},
		{
			in:    `{"k": "v"}`,
			types: []TokenType{TLCurl, TString, TColon, TString, TRCurl, TEOF},
		},
		{
			in:    `{k: [true, false, null, x_Y]}`,
			types: []TokenType{TLCurl, TLiteral, TColon, TLSquare, TTrue, TComma, TFalse, TComma, TNull, TComma, TLiteral, TRSquare, TRCurl, TEOF},
		},
		{
			in:    `true false null`,
			types: []TokenType{TTrue, TFalse, TNull, TEOF},
		},
		{
			in:    `truex nullish _false`,
			types: []TokenType{TLiteral, TLiteral, TLiteral, TEOF},
		},
		{
			in:    `"{[:,]}"`,
			types: []TokenType{TString, TEOF},
		},
	}
	for _, pt := range pts {
		toks, err := Tokenize(nil, []byte(pt.in))
		if err != nil {
			t.Errorf("%q: %s", pt.in, err)
			continue
		}
		if len(toks) == 0 || toks[len(toks)-1].Type != TEOF {
			t.Errorf("%q: sequence does not end in TEOF", pt.in)
			continue
		}
		if len(toks) != len(pt.types) {
			t.Errorf("%q: got %d tokens, want %d", pt.in, len(toks), len(pt.types))
			continue
		}
		for i := range toks {
			if toks[i].Type != pt.types[i] {
				t.Errorf("%q: token %d: got %s, want %s", pt.in, i, toks[i].Type, pt.types[i])
			}
		}
	}
}

func TestTokenizeUnknownSymbol(t *testing.T) {
	pts := []struct {
		in  string
		off int
	}{
		{`{"k": 1}`, 6},
		{`@`, 0},
		{`{a: b} #`, 7},
		{`{"k": -1}`, 6},
	}
	for _, pt := range pts {
		_, err := Tokenize(nil, []byte(pt.in))
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("%q: got %v, want ErrUnknownSymbol", pt.in, err)
			continue
		}
		var tErr *TokenizeErr
		if !errors.As(err, &tErr) {
			t.Errorf("%q: error is not a *TokenizeErr", pt.in)
			continue
		}
		if tErr.Pos.I != pt.off {
			t.Errorf("%q: error at offset %d, want %d", pt.in, tErr.Pos.I, pt.off)
		}
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	in := `{"k": "v`
	_, err := Tokenize(nil, []byte(in))
	if !errors.Is(err, ErrUnterminated) {
		t.Fatalf("got %v, want ErrUnterminated", err)
	}

	toks, err := Tokenize(nil, []byte(in), Lenient())
	if err != nil {
		t.Fatalf("lenient: %s", err)
	}
	last := toks[len(toks)-2]
	if last.Type != TString {
		t.Fatalf("lenient: got %s, want TString", last.Type)
	}
	if got := last.String(); got != "v" {
		t.Errorf("lenient: got %q, want %q", got, "v")
	}
}

func TestTokenizePos(t *testing.T) {
	in := "{\n  k: \"v\"\n}"
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	// TLCurl TLiteral TColon TString TRCurl TEOF
	pts := []struct {
		i         int
		line, col int
	}{
		{0, 0, 0},  // {
		{1, 1, 2},  // k
		{3, 1, 5},  // "v"
		{4, 2, 0},  // }
	}
	for _, pt := range pts {
		line, col := toks[pt.i].Pos.LineCol()
		if line != pt.line || col != pt.col {
			t.Errorf("token %d: got %d:%d, want %d:%d", pt.i, line, col, pt.line, pt.col)
		}
	}
}

// Lexing then re-joining all non-structural lexemes recovers each
// literal's exact original text, minus quote delimiters for strings.
func TestTokenizeRoundTrip(t *testing.T) {
	in := `{ alpha : "some text, with: structure" , c: [x, "y", true, null] }`
	want := []string{"alpha", "some text, with: structure", "c", "x", "y", "true", "null"}
	toks, err := Tokenize(nil, []byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for i := range toks {
		switch toks[i].Type {
		case TString, TLiteral, TTrue, TFalse, TNull:
			got = append(got, toks[i].String())
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lexemes, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("lexeme %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTokenBytesAliasSource(t *testing.T) {
	src := []byte(`{k: "val"}`)
	toks, err := Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	for i := range toks {
		tok := &toks[i]
		if tok.Type == TEOF {
			continue
		}
		if &tok.Bytes[0] != &src[tok.Pos.I] {
			t.Errorf("token %d (%s) does not alias the source buffer", i, tok.Type)
		}
	}
}
