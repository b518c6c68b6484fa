package main

import (
	goerrors "errors"

	"github.com/pipe01/htmlgen/errors"
	"github.com/pipe01/htmlgen/internal/generator"
	"github.com/pipe01/htmlgen/internal/lexer"
	"github.com/pipe01/htmlgen/internal/parser/ast"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// diagnose turns lint and rendering warnings into LSP warnings. Shorthand is
// never rejected so there are no errors to report.
func diagnose(doc *ast.Document, res *generator.Result) []protocol.Diagnostic {
	diag := []protocol.Diagnostic{}

	for _, warnings := range [][]ast.Warning{doc.Warnings, res.Warnings} {
		for _, w := range warnings {
			diag = append(diag, protocol.Diagnostic{
				Range: protocol.Range{
					Start: pos(w.At()),
					End:   pos(w.At()),
				},
				Severity: ptr(protocol.DiagnosticSeverityWarning),
				Source:   ptr(lsName),
				Message:  w.Message,
			})
		}
	}

	return diag
}

func errorDiagnostic(err error) protocol.Diagnostic {
	var poserr errors.SituatedErr

	if goerrors.As(err, &poserr) {
		return protocol.Diagnostic{
			Range: protocol.Range{
				Start: pos(poserr.At()),
				End:   pos(poserr.At()),
			},
			Severity: ptr(protocol.DiagnosticSeverityError),
			Source:   ptr(lsName),
			Message:  poserr.Unwrap().Error(),
		}
	}

	return protocol.Diagnostic{
		Severity: ptr(protocol.DiagnosticSeverityError),
		Source:   ptr(lsName),
		Message:  err.Error(),
	}
}

// hoverAt previews the markup of the element under loc, rendered on its own.
func hoverAt(doc *ast.Document, loc lexer.Location) *protocol.Hover {
	for _, el := range doc.Elements {
		if !el.Contains(loc) {
			continue
		}

		markup, _ := generator.Generate([]*ast.Element{el}, generator.Options{})

		end := el.Position()
		end.Column += len(el.Raw)

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: "```html\n" + markup + "\n```",
			},
			Range: &protocol.Range{
				Start: pos(el.Position()),
				End:   pos(end),
			},
		}
	}

	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func pos(l lexer.Location) protocol.Position {
	return protocol.Position{
		Line:      uint32(l.Line),
		Character: uint32(l.Column),
	}
}
