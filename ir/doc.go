// Package ir provides the intermediate representation for jot documents.
//
// All jot documents are represented as trees of ir.Node. The IR is a
// simple recursive tagged union: atomic types (null, boolean, string) and
// composite types (object, array). Each node maintains parent-child
// relationships, allowing navigation through the tree structure.
//
// The format has no numeric literals, so the IR has no numeric type.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/parse - Parse text to IR
//   - github.com/jot-format/go-jot/encode - Encode IR to text
//   - github.com/jot-format/go-jot/token - Tokenization
package ir
