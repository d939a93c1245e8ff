package token

import "strings"

// CanQuote reports whether v can be written as a quoted string lexeme.
// The grammar has no escape sequences, so a string containing '"' has no
// representation.
func CanQuote(v string) bool {
	return strings.IndexByte(v, '"') < 0
}

// scanQuoted scans a quoted string lexeme starting at d[0] == '"'. It
// returns the total lexeme length including both quotes. The grammar has
// no escape sequences: the lexeme ends at the next '"'.
//
// A string still open at the end of the buffer yields ErrUnterminated
// unless lenient is set, in which case the lexeme ends at the buffer
// boundary.
func scanQuoted(d []byte, lenient bool) (int, error) {
	n := len(d)
	for i := 1; i < n; i++ {
		if d[i] == '"' {
			return i + 1, nil
		}
	}
	if lenient {
		return n, nil
	}
	return 0, ErrUnterminated
}

// QuotedToString strips the delimiting quotes from a TString lexeme. The
// closing quote may be absent when the lexeme was scanned leniently.
func QuotedToString(d []byte) string {
	if len(d) == 0 || d[0] != '"' {
		return string(d)
	}
	d = d[1:]
	if len(d) > 0 && d[len(d)-1] == '"' {
		d = d[:len(d)-1]
	}
	return string(d)
}
