package encode

import (
	"testing"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

type encTest struct {
	in   string
	want string
	wire string
}

func TestEncode(t *testing.T) {
	pts := []encTest{
		{
			in:   `{}`,
			want: "{}",
			wire: `{}`,
		},
		{
			in:   `{"k": "v"}`,
			want: "{\n  \"k\": \"v\"\n}",
			wire: `{"k":"v"}`,
		},
		{
			in:   `{k: v}`,
			want: "{\n  \"k\": \"v\"\n}",
			wire: `{"k":"v"}`,
		},
		{
			in:   `{"k": [true, null]}`,
			want: "{\n  \"k\": [\n    true,\n    null\n  ]\n}",
			wire: `{"k":[true,null]}`,
		},
		{
			in:   `{"k": [], "j": {}}`,
			want: "{\n  \"k\": [],\n  \"j\": {}\n}",
			wire: `{"k":[],"j":{}}`,
		},
		{
			in:   `{"a": {"b": false}}`,
			want: "{\n  \"a\": {\n    \"b\": false\n  }\n}",
			wire: `{"a":{"b":false}}`,
		},
	}
	for _, pt := range pts {
		y, err := parse.ParseString(pt.in)
		if err != nil {
			t.Fatalf("%q: %s", pt.in, err)
		}
		if got := MustString(y); got != pt.want {
			t.Errorf("%q: got %q, want %q", pt.in, got, pt.want)
		}
		if got := MustString(y, EncodeWire(true)); got != pt.wire {
			t.Errorf("%q wire: got %q, want %q", pt.in, got, pt.wire)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	y, err := parse.ParseString(`{"k": "v"}`)
	if err != nil {
		t.Fatal(err)
	}
	if got := MustString(y, Indent(4)); got != "{\n    \"k\": \"v\"\n}" {
		t.Errorf("got %q", got)
	}
}

// Parsing the encoder's output reproduces the original tree.
func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		`{}`,
		`{k: [v, true, null, {"deep": []}], j: {a: b}}`,
		`{"text": "spaced words, punctuated: yes"}`,
	}
	for _, in := range docs {
		y, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("%q: %s", in, err)
		}
		for _, opts := range [][]EncodeOption{nil, {EncodeWire(true)}} {
			back, err := parse.ParseString(MustString(y, opts...))
			if err != nil {
				t.Errorf("%q: re-parse: %s", in, err)
				continue
			}
			if !ir.Equal(y, back) {
				t.Errorf("%q: round trip changed the tree", in)
			}
		}
	}
}
