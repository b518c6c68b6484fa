package errors

import "github.com/pipe01/htmlgen/internal/lexer"

// SituatedErr is implemented by errors that point at a place in the input,
// such as parser.ParserError.
type SituatedErr interface {
	error
	Unwrap() error
	At() lexer.Location
}
