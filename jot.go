// Package jot is the entry point for working with jot documents: a lean
// JSON-like format whose documents are objects of strings, bare
// identifiers, booleans, nulls, nested objects and arrays.
package jot

import (
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

// Parse parses one document.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString parses one document from a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Valid reports whether d conforms to the grammar.
func Valid(d []byte, opts ...parse.ParseOption) error {
	_, err := parse.Parse(d, opts...)
	return err
}
