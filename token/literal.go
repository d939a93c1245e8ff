package token

// isLiteralByte reports whether c continues an identifier lexeme.
func isLiteralByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '_':
		return true
	}
	return false
}

// scanLiteral scans a maximal identifier lexeme at d[0].
func scanLiteral(d []byte) []byte {
	i, n := 0, len(d)
	for i < n && isLiteralByte(d[i]) {
		i++
	}
	return d[:i]
}

// literalToken classifies an identifier lexeme. The keywords true, false
// and null get their own token types; anything else is a generic literal
// and the grammar decides later whether it is acceptable in context.
func literalToken(lit []byte, pos *Pos) Token {
	typ := TLiteral
	switch string(lit) {
	case "true":
		typ = TTrue
	case "false":
		typ = TFalse
	case "null":
		typ = TNull
	}
	return Token{
		Type:  typ,
		Pos:   pos,
		Bytes: lit,
	}
}
