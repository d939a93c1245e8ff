// Package token tokenizes jot document text.
//
// The tokenizer performs one linear pass over an in-memory buffer,
// producing a token sequence that always ends with a TEOF token. Token
// bytes are subslices of the input buffer; nothing is copied.
//
// # Usage
//
//	toks, err := token.Tokenize(nil, []byte(`{name: "alice"}`))
//	if err != nil {
//	    return err
//	}
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/parse - Parse tokens into IR
//   - github.com/jot-format/go-jot/ir - IR representation
package token
