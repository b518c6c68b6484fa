package workspace

import (
	"bytes"

	"github.com/pipe01/htmlgen/internal/lexer"
)

type field struct {
	text string
	loc  lexer.Location
}

// splitFields returns every whitespace separated word in contents along with
// where it starts.
func splitFields(contents []byte, file string) []field {
	var fields []field

	for line, text := range bytes.Split(contents, []byte{'\n'}) {
		start := -1

		for col := 0; col <= len(text); col++ {
			if col < len(text) && !isWhitespace(text[col]) {
				if start < 0 {
					start = col
				}
				continue
			}

			if start >= 0 {
				fields = append(fields, field{
					text: string(text[start:col]),
					loc:  lexer.Location{File: file, Line: line, Column: start},
				})
				start = -1
			}
		}
	}

	return fields
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\v' || b == '\f'
}
