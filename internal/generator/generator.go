package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/pipe01/htmlgen/internal/parser/ast"
	"github.com/pipe01/htmlgen/internal/voidtags"
)

type Options struct {
	// VoidTags decides which elements are self-closing, defaults to voidtags.Default().
	VoidTags *voidtags.Table
}

type Result struct {
	// Drained holds the tags that were still open after the last element, in
	// the order they were closed.
	Drained []string

	Warnings []ast.Warning
}

// Visit writes the markup for elements to w. Every non-void element is
// closed by the time Visit returns, the only possible error comes from w.
func Visit(w io.Writer, elements []*ast.Element, opts Options) (*Result, error) {
	if opts.VoidTags == nil {
		opts.VoidTags = voidtags.Default()
	}

	ctx := context{
		w: &outputWriter{
			w: w,
		},
		voidTags: opts.VoidTags,
	}

	for _, el := range elements {
		ctx.visitElement(el)
	}

	res := &Result{
		Drained:  ctx.drain(),
		Warnings: ctx.warnings,
	}

	if ctx.w.err != nil {
		return nil, fmt.Errorf("write markup: %w", ctx.w.err)
	}

	return res, nil
}

// Generate is Visit into a string.
func Generate(elements []*ast.Element, opts Options) (string, *Result) {
	var sb strings.Builder

	// strings.Builder never fails
	res, _ := Visit(&sb, elements, opts)

	return sb.String(), res
}

type context struct {
	w *outputWriter

	voidTags *voidtags.Table
	stack    tagStack

	warnings []ast.Warning
}

func (c *context) visitElement(el *ast.Element) {
	attrs, isVoid := c.voidTags.Lookup(el.Tag)

	// An inline-closed element sits at its parent's level
	if el.Closing {
		c.w.indent(-1)

		if isVoid {
			c.warnAt(el, "self-closing %q marked as closed, the elements after it move one level up", el.Tag)
		}
		if c.w.indentation < 0 {
			c.warnAt(el, "closing %q goes below the top level", el.Tag)
		}
	}

	c.w.WriteOpenTag(el.Tag, el.ID, el.Classes)

	if isVoid {
		c.w.WritePlaceholders(attrs)
		c.w.WriteLiteral(" />")
		return
	}

	c.w.WriteLiteral(">")

	if el.Closing {
		c.w.WriteCloseTag(el.Tag)
		return
	}

	c.stack.push(el.Tag)
	c.w.indent(1)
}

func (c *context) drain() []string {
	drained := make([]string, 0, c.stack.len())

	for c.stack.len() > 0 {
		tag := c.stack.pop()

		c.w.indent(-1)
		c.w.WriteCloseTag(tag)

		drained = append(drained, tag)
	}

	return drained
}

func (c *context) warnAt(el *ast.Element, format string, args ...any) {
	c.warnings = append(c.warnings, ast.Warning{
		Pos:     el.Pos,
		Message: fmt.Sprintf(format, args...),
	})
}
