// Package voidtags holds the table of self-closing elements and the
// placeholder attributes each of them is rendered with.
package voidtags

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var defaultElements = map[string][]string{
	"area":    {"alt", "coords", "shape", "href"},
	"base":    {"href", "target"},
	"br":      {},
	"col":     {"span"},
	"command": {"type", "label"},
	"embed":   {"src", "type"},
	"hr":      {},
	"img":     {"src", "alt"},
	"input":   {"type", "name", "value"},
	"keygen":  {"keytype", "name"},
	"link":    {"rel", "href"},
	"meta":    {"charset", "content"},
	"param":   {"name", "value"},
	"source":  {"src", "type"},
	"track":   {"kind", "src"},
	"wbr":     {},
}

// Table maps lowercase tag names to their placeholder attributes. A Table is
// never modified after it's built.
type Table struct {
	elements map[string][]string
}

var defaultTable = &Table{elements: defaultElements}

// Default returns the built-in table.
func Default() *Table {
	return defaultTable
}

// Lookup returns the placeholder attributes of tag, ignoring case. ok is false
// when tag isn't a void element.
func (t *Table) Lookup(tag string) (attrs []string, ok bool) {
	attrs, ok = t.elements[strings.ToLower(tag)]
	return slices.Clone(attrs), ok
}

func (t *Table) IsVoid(tag string) bool {
	_, ok := t.elements[strings.ToLower(tag)]
	return ok
}

// Tags returns every void tag name, sorted.
func (t *Table) Tags() []string {
	tags := maps.Keys(t.elements)
	slices.Sort(tags)
	return tags
}

func (t *Table) Len() int {
	return len(t.elements)
}

type tableFile struct {
	Replace  bool            `hcl:"replace,optional"`
	Elements []*elementBlock `hcl:"element,block"`
}

type elementBlock struct {
	Name       string   `hcl:"name,label"`
	Attributes []string `hcl:"attributes,optional"`
}

// Load reads an HCL table file and applies it over the default table.
func Load(path string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL file %s: %w", path, diags)
	}

	return decode(file.Body, path)
}

// Parse is like Load but takes the file contents, filename is only used
// in diagnostics.
func Parse(src []byte, filename string) (*Table, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse HCL file %s: %w", filename, diags)
	}

	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Table, error) {
	var cfg tableFile
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode HCL file %s: %w", filename, diags)
	}

	elements := make(map[string][]string, len(defaultElements)+len(cfg.Elements))
	if !cfg.Replace {
		maps.Copy(elements, defaultElements)
	}

	for _, el := range cfg.Elements {
		name := strings.ToLower(strings.TrimSpace(el.Name))
		if name == "" {
			return nil, fmt.Errorf("decode HCL file %s: element name can't be empty", filename)
		}

		attrs := el.Attributes
		if attrs == nil {
			attrs = []string{}
		}
		elements[name] = attrs
	}

	return &Table{elements: elements}, nil
}
