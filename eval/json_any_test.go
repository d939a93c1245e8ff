package eval

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

func TestToAny(t *testing.T) {
	y, err := parse.ParseString(`{name: jot, ok: true, gone: null, tags: [a, b]}`)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"name": "jot",
		"ok":   true,
		"gone": nil,
		"tags": []any{"a", "b"},
	}
	if d := cmp.Diff(want, ToAny(y)); d != "" {
		t.Errorf("ToAny (-want +got):\n%s", d)
	}
}

func TestFromAnyRoundTrip(t *testing.T) {
	y, err := parse.ParseString(`{"k": [x, {"deep": false}], "j": null}`)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromAny(ToAny(y))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(y, back) {
		t.Error("FromAny(ToAny(y)) differs from y")
	}
}

func TestFromAnyRejectsNumbers(t *testing.T) {
	pts := []any{
		1,
		int64(2),
		3.5,
		json.Number("4"),
		[]any{"ok", 1},
		map[string]any{"n": 1.0},
	}
	for _, pt := range pts {
		if _, err := FromAny(pt); !errors.Is(err, ErrNumber) {
			t.Errorf("%v: got %v, want ErrNumber", pt, err)
		}
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("unrepresentable type should error")
	}
}

// The grammar has no string escapes, so a string containing '"' must be
// rejected at the bridge rather than encoded as unparseable text.
func TestFromAnyRejectsUnquotableStrings(t *testing.T) {
	pts := []any{
		`a"b`,
		[]any{"ok", `"`},
		map[string]any{"k": `x"y`},
	}
	for _, pt := range pts {
		if _, err := FromAny(pt); !errors.Is(err, ErrString) {
			t.Errorf("%v: got %v, want ErrString", pt, err)
		}
	}
	if _, err := UnmarshalJSON([]byte(`{"k": "a\"b"}`)); !errors.Is(err, ErrString) {
		t.Error("JSON string with an embedded quote should yield ErrString")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	y, err := parse.ParseString(`{"a": [true, null, "s"], "b": {"c": x}}`)
	if err != nil {
		t.Fatal(err)
	}
	d, err := MarshalJSON(y)
	if err != nil {
		t.Fatal(err)
	}
	back, err := UnmarshalJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(y, back) {
		t.Error("JSON round trip changed the tree")
	}
}

func TestUnmarshalJSONRejectsNumbers(t *testing.T) {
	if _, err := UnmarshalJSON([]byte(`{"n": 1}`)); !errors.Is(err, ErrNumber) {
		t.Errorf("got %v, want ErrNumber", err)
	}
}
