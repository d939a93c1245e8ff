// Package parse parses jot document text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{name: "alice", admin: true}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`{"k": ["a", "b"]}`)
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.MaxDepth(64))
//
// A document is a single object at the top level. Errors wrap ErrParse
// and one of the sentinel errors in errs.go identifying the violated
// grammar rule; parsing stops at the first violation.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - IR representation
//   - github.com/jot-format/go-jot/encode - Encode IR to text
//   - github.com/jot-format/go-jot/token - Tokenization
package parse
