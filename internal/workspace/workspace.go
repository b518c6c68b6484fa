package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pipe01/htmlgen/internal/lexer"
	"github.com/pipe01/htmlgen/internal/parser"
	"github.com/pipe01/htmlgen/internal/parser/ast"
)

// Workspace loads tokens files relative to a root directory and caches the
// parsed documents until they're forgotten.
type Workspace struct {
	rootPath string

	parsedFiles map[string]*ast.Document
}

func New(rootPath string) *Workspace {
	return &Workspace{
		rootPath:    rootPath,
		parsedFiles: make(map[string]*ast.Document),
	}
}

func (w *Workspace) Load(relPath string) (*ast.Document, error) {
	fullPath := w.fullPath(relPath)

	if doc, ok := w.parsedFiles[fullPath]; ok {
		return doc, nil
	}

	bytes, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return w.LoadWithContents(relPath, bytes)
}

// LoadWithContents parses contents as if they had been read from relPath and
// caches the result, replacing any previous document for that path.
func (w *Workspace) LoadWithContents(relPath string, contents []byte) (*ast.Document, error) {
	doc, err := parseDocument(relPath, splitFields(contents, relPath))
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	w.parsedFiles[w.fullPath(relPath)] = doc
	return doc, nil
}

// Forget drops the cached document for relPath, the next Load reads it again.
func (w *Workspace) Forget(relPath string) {
	delete(w.parsedFiles, w.fullPath(relPath))
}

func (w *Workspace) fullPath(relPath string) string {
	if filepath.IsAbs(relPath) {
		return filepath.Clean(relPath)
	}

	return filepath.Join(w.rootPath, relPath)
}

// FromArgs builds a document out of command line arguments, one element per
// argument. Locations use the argument index as line and have no file.
func FromArgs(args []string) (*ast.Document, error) {
	fields := make([]field, len(args))
	for i, arg := range args {
		fields[i] = field{
			text: arg,
			loc:  lexer.Location{Line: i},
		}
	}

	return parseDocument("", fields)
}

// Append adds the elements and warnings of other at the end of doc.
func Append(doc, other *ast.Document) *ast.Document {
	return &ast.Document{
		Name:     doc.Name,
		Elements: append(doc.Elements[:len(doc.Elements):len(doc.Elements)], other.Elements...),
		Warnings: append(doc.Warnings[:len(doc.Warnings):len(doc.Warnings)], other.Warnings...),
	}
}

func parseDocument(name string, fields []field) (*ast.Document, error) {
	doc := &ast.Document{
		Elements: make([]*ast.Element, 0, len(fields)),
	}
	if name != "" {
		doc.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	for _, f := range fields {
		tks := lexer.New(f.text, f.loc).Collect()

		el, warnings, err := parser.Parse(tks)
		if err != nil {
			return nil, err
		}

		doc.Elements = append(doc.Elements, el)
		doc.Warnings = append(doc.Warnings, warnings...)
	}

	return doc, nil
}
