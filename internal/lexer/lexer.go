package lexer

import "fmt"

const debugPrint = false

type stateFunc func() stateFunc

// Lexer splits a single shorthand element such as "div.container#main/" into
// segments. A segment starts before every '.', '#' or '/' found after the
// first character, so "/p" is lexed as a tag named "/p".
type Lexer struct {
	src   string
	start Location

	index    int
	strStart int

	tokens []Token
}

func New(element string, start Location) *Lexer {
	return &Lexer{
		src:    element,
		start:  start,
		tokens: make([]Token, 0, 4),
	}
}

// Collect lexes the whole element. The returned slice always ends with a
// TokenEOF, lexing can't fail.
func (l *Lexer) Collect() []Token {
	state := l.lexTagName
	for state != nil {
		state = state()
	}

	l.tokens = append(l.tokens, Token{
		Type:  TokenEOF,
		Start: l.location(len(l.src)),
	})

	return l.tokens
}

func (l *Lexer) location(index int) Location {
	loc := l.start
	loc.Column += index
	return loc
}

func (l *Lexer) takeUntilBoundary() {
	for l.index < len(l.src) && !isBoundary(l.src[l.index]) {
		l.index++
	}
}

func (l *Lexer) emit(typ TokenType) {
	tk := Token{
		Type:     typ,
		Start:    l.location(l.strStart),
		Contents: l.src[l.strStart:l.index],
	}

	if debugPrint {
		fmt.Printf("emit %s %q\n", tk.Type, tk.Contents)
	}

	l.tokens = append(l.tokens, tk)
	l.strStart = l.index
}

func (l *Lexer) lexTagName() stateFunc {
	// The first character never starts a new segment
	if l.index < len(l.src) && isBoundary(l.src[l.index]) {
		l.index++
	}

	l.takeUntilBoundary()
	l.emit(TokenTagName)

	return l.lexSegment
}

func (l *Lexer) lexSegment() stateFunc {
	if l.index >= len(l.src) {
		return nil
	}

	types := valueTokens[l.src[l.index]]

	l.index++
	l.emit(types.marker)

	l.takeUntilBoundary()
	l.emit(types.value)

	return l.lexSegment
}
