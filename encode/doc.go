// Package encode writes IR nodes as canonical jot text.
//
// Canonical output always quotes strings and keys. The grammar has no
// escape sequences, so string bytes are written as-is between the
// quotes. The default layout is indented; Wire produces a compact
// single line. Colors enables a terminal color theme.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//	s := encode.MustString(node)
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - IR representation
//   - github.com/jot-format/go-jot/parse - Parse text to IR
package encode
