package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pipe01/htmlgen/internal/lexer"
	. "github.com/pipe01/htmlgen/internal/parser/ast"
)

var ErrLastTokenEOF = errors.New("last token must be EOF")

type ParserError struct {
	Inner    error
	Location lexer.Location
}

func (e *ParserError) Unwrap() error {
	return e.Inner
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Inner, &e.Location)
}

func (e *ParserError) At() lexer.Location {
	return e.Location
}

type UnexpectedTokenError struct {
	Got      *lexer.Token
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected %s, found %q (%s)", e.Expected, e.Got.Contents, e.Got.Type)
}

type parser struct {
	tokens []lexer.Token
	index  int

	err      *ParserError
	warnings []Warning
}

// Parse folds the tokens of a single shorthand element into an Element. The
// returned warnings never prevent the element from being rendered.
func Parse(tokens []lexer.Token) (*Element, []Warning, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokenEOF {
		return nil, nil, ErrLastTokenEOF
	}

	p := parser{
		tokens: tokens,
	}

	el := p.parseElement()
	if p.err != nil {
		return nil, nil, p.err
	}

	return el, p.warnings, nil
}

func (p *parser) take() (tk *lexer.Token) {
	if p.index >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1] // Last token should be EOF
	}

	tk = &p.tokens[p.index]
	p.index++

	return tk
}

func (p *parser) mustTake(typ lexer.TokenType) (tk *lexer.Token, found bool) {
	tk = p.take()
	if tk.Type != typ {
		p.err = &ParserError{
			Inner: &UnexpectedTokenError{
				Got:      tk,
				Expected: typ.String(),
			},
			Location: tk.Start,
		}
		return nil, false
	}

	return tk, true
}

func (p *parser) peek() *lexer.Token {
	if p.index >= len(p.tokens) {
		return &p.tokens[len(p.tokens)-1]
	}

	return &p.tokens[p.index]
}

func (p *parser) warnAt(loc lexer.Location, format string, args ...any) {
	p.warnings = append(p.warnings, Warning{
		Pos:     Pos(loc),
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) parseElement() *Element {
	tkTag, ok := p.mustTake(lexer.TokenTagName)
	if !ok {
		return nil
	}

	el := &Element{
		Pos: Pos(tkTag.Start),
		Tag: tkTag.Contents,
	}

	switch {
	case el.Tag == "":
		p.warnAt(tkTag.Start, "element has no tag name")
	case el.Tag == "/":
		p.warnAt(tkTag.Start, "element is only a closing marker")
	case strings.HasPrefix(el.Tag, "/"):
		p.warnAt(tkTag.Start, "leading '/' is part of the tag name %q, write %q to close an element inline", el.Tag, el.Tag[1:]+"/")
	}

	var raw strings.Builder
	raw.WriteString(tkTag.Contents)

	var idTok *lexer.Token
	var lastSlash *lexer.Token

loop:
	for {
		tk := p.take()
		raw.WriteString(tk.Contents)

		switch tk.Type {
		case lexer.TokenEOF:
			break loop

		case lexer.TokenDot:
			tkName, ok := p.mustTake(lexer.TokenClassName)
			if !ok {
				return nil
			}
			raw.WriteString(tkName.Contents)

			if tkName.Contents == "" {
				p.warnAt(tk.Start, "empty class name")
			}
			el.Classes = append(el.Classes, tkName.Contents)

		case lexer.TokenHashtag:
			tkID, ok := p.mustTake(lexer.TokenID)
			if !ok {
				return nil
			}
			raw.WriteString(tkID.Contents)

			if idTok != nil {
				p.warnAt(tk.Start, "only the first id is used, %q is ignored", tkID.Contents)
				continue
			}
			if tkID.Contents == "" {
				p.warnAt(tk.Start, "empty id is ignored")
			}

			idTok = tkID
			el.ID = tkID.Contents

		case lexer.TokenSlash:
			tkText, ok := p.mustTake(lexer.TokenText)
			if !ok {
				return nil
			}
			raw.WriteString(tkText.Contents)

			if lastSlash != nil {
				p.warnAt(lastSlash.Start, "'/' only closes an element at the end of it")
			}
			lastSlash = tk

			if tkText.Contents != "" {
				p.warnAt(tk.Start, "segment %q is ignored", tk.Contents+tkText.Contents)
				lastSlash = nil
			}

		default:
			p.err = &ParserError{
				Inner: &UnexpectedTokenError{
					Got:      tk,
					Expected: "a segment marker",
				},
				Location: tk.Start,
			}
			return nil
		}
	}

	el.Raw = raw.String()
	el.Closing = strings.HasSuffix(el.Raw, "/")

	if lastSlash != nil && !el.Closing {
		p.warnAt(lastSlash.Start, "'/' only closes an element at the end of it")
	}

	return el
}
