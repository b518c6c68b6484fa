package lexer

// valueTokens maps each segment marker to the token type of the value that follows it.
var valueTokens = map[byte]struct {
	marker, value TokenType
}{
	'.': {TokenDot, TokenClassName},
	'#': {TokenHashtag, TokenID},
	'/': {TokenSlash, TokenText},
}

func isBoundary(b byte) bool {
	_, ok := valueTokens[b]
	return ok
}
