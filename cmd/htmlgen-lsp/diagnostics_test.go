package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pipe01/htmlgen/internal/generator"
	"github.com/pipe01/htmlgen/internal/lexer"
	"github.com/pipe01/htmlgen/internal/parser"
	"github.com/pipe01/htmlgen/internal/workspace"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnose(t *testing.T) {
	doc, err := workspace.New(t.TempDir()).LoadWithContents("page.tokens", []byte("div\n  img/ h1#a#b\n"))
	if err != nil {
		t.Fatal(err)
	}

	_, res := generator.Generate(doc.Elements, generator.Options{})
	diag := diagnose(doc, res)

	if len(diag) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %+v", len(diag), diag)
	}

	// Lint warnings come first
	if diag[0].Range.Start != (protocol.Position{Line: 1, Character: 11}) {
		t.Errorf("unexpected position for the id warning: %+v", diag[0].Range.Start)
	}
	if diag[1].Range.Start != (protocol.Position{Line: 1, Character: 2}) {
		t.Errorf("unexpected position for the void close warning: %+v", diag[1].Range.Start)
	}

	for _, d := range diag {
		if *d.Severity != protocol.DiagnosticSeverityWarning {
			t.Errorf("expected warning severity, got %v", *d.Severity)
		}
	}
}

func TestHoverAt(t *testing.T) {
	doc, err := workspace.New(t.TempDir()).LoadWithContents("page.tokens", []byte("ul input.f#n"))
	if err != nil {
		t.Fatal(err)
	}

	h := hoverAt(doc, lexer.Location{Line: 0, Column: 5})
	if h == nil {
		t.Fatal("expected a hover")
	}

	content := h.Contents.(protocol.MarkupContent)
	want := "```html\n<input id=\"n\" class=\"f\" type=\"valeur_type\" name=\"valeur_name\" value=\"valeur_value\" />\n```"
	if content.Value != want {
		t.Errorf("unexpected hover:\n got: %q\nwant: %q", content.Value, want)
	}
	if h.Range.Start.Character != 3 || h.Range.End.Character != 12 {
		t.Errorf("unexpected range: %+v", h.Range)
	}

	if h := hoverAt(doc, lexer.Location{Line: 0, Column: 2}); h != nil {
		t.Errorf("expected no hover between elements, got %+v", h)
	}
}

func TestErrorDiagnostic(t *testing.T) {
	err := fmt.Errorf("parse file: %w", &parser.ParserError{
		Inner:    errors.New("boom"),
		Location: lexer.Location{File: "page.tokens", Line: 2, Column: 3},
	})

	d := errorDiagnostic(err)
	if d.Message != "boom" || d.Range.Start != (protocol.Position{Line: 2, Character: 3}) {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
	if *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("expected error severity, got %v", *d.Severity)
	}

	d = errorDiagnostic(errors.New("plain"))
	if d.Message != "plain" {
		t.Errorf("unexpected message %q", d.Message)
	}
}
