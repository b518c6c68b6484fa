package lexer

import "fmt"

type TokenType int

const (
	TokenTagName TokenType = iota

	TokenDot
	TokenHashtag
	TokenSlash

	TokenClassName
	TokenID
	TokenText

	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenTagName:
		return "Tag name"

	case TokenDot:
		return "Dot"
	case TokenHashtag:
		return "Hashtag"
	case TokenSlash:
		return "Slash"

	case TokenClassName:
		return "Class name"
	case TokenID:
		return "ID"
	case TokenText:
		return "Text"

	case TokenEOF:
		return "EOF"
	}

	return "<unknown>"
}

type Token struct {
	Type     TokenType
	Start    Location
	Contents string
}

type Location struct {
	File string

	// 0-based
	Line, Column int
}

func (l *Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("arg %d:%d", l.Line+1, l.Column+1)
	}

	return fmt.Sprintf("%s:%d:%d", l.File, l.Line+1, l.Column+1)
}
