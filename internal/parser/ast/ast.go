package ast

import (
	"fmt"

	"github.com/pipe01/htmlgen/internal/lexer"
)

type Pos lexer.Location

func (p Pos) Position() lexer.Location {
	return lexer.Location(p)
}

// At reports where the node starts, it makes warnings usable wherever a
// positioned diagnostic is expected.
func (p Pos) At() lexer.Location {
	return lexer.Location(p)
}

type Document struct {
	Name     string
	Elements []*Element
	Warnings []Warning
}

// Element is a single shorthand token, decomposed.
type Element struct {
	Pos

	// Raw is the token as written.
	Raw string

	Tag     string
	ID      string
	Classes []string

	// Closing is set when the token ends with a '/'.
	Closing bool
}

// HasID reports whether the element renders an id attribute.
func (e *Element) HasID() bool {
	return e.ID != ""
}

// Contains reports whether loc points inside the raw token.
func (e *Element) Contains(loc lexer.Location) bool {
	return loc.Line == e.Line && loc.Column >= e.Column && loc.Column < e.Column+len(e.Raw)
}

// Warning describes shorthand that is accepted but probably not what the
// author meant.
type Warning struct {
	Pos

	Message string
}

func (w Warning) String() string {
	loc := w.At()
	return fmt.Sprintf("%s: %s", &loc, w.Message)
}
