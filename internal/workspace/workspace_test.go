package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pipe01/htmlgen/internal/lexer"
)

func assert[T comparable](t *testing.T, expected, got T, msg string) {
	t.Helper()

	if got != expected {
		t.Fatalf("%s: expected %v, got %v", msg, expected, got)
	}
}

func TestLoadWithContents(t *testing.T) {
	ws := New(t.TempDir())

	doc, err := ws.LoadWithContents("page.tokens", []byte("div.container  h1#title\r\n\n\tp/ img/\n"))
	if err != nil {
		t.Fatal(err)
	}

	assert(t, "page", doc.Name, "document name")
	assert(t, 4, len(doc.Elements), "element count")

	want := []struct {
		raw string
		loc lexer.Location
	}{
		{"div.container", lexer.Location{File: "page.tokens", Line: 0, Column: 0}},
		{"h1#title", lexer.Location{File: "page.tokens", Line: 0, Column: 15}},
		{"p/", lexer.Location{File: "page.tokens", Line: 2, Column: 1}},
		{"img/", lexer.Location{File: "page.tokens", Line: 2, Column: 4}},
	}

	for i, w := range want {
		el := doc.Elements[i]
		assert(t, w.raw, el.Raw, "raw element")
		assert(t, w.loc, el.Position(), "element position")
	}

	assert(t, true, doc.Elements[1].Contains(lexer.Location{Line: 0, Column: 22}), "contains last column")
	assert(t, false, doc.Elements[1].Contains(lexer.Location{Line: 0, Column: 23}), "contains past the end")
}

func TestLoadCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.tokens")

	if err := os.WriteFile(path, []byte("ul li"), 0o644); err != nil {
		t.Fatal(err)
	}

	ws := New(dir)

	first, err := ws.Load("page.tokens")
	if err != nil {
		t.Fatal(err)
	}
	assert(t, 2, len(first.Elements), "element count")

	if err := os.WriteFile(path, []byte("ul li li"), 0o644); err != nil {
		t.Fatal(err)
	}

	cached, err := ws.Load("page.tokens")
	if err != nil {
		t.Fatal(err)
	}
	assert(t, first, cached, "cached document")

	ws.Forget("page.tokens")

	reloaded, err := ws.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	assert(t, 3, len(reloaded.Elements), "reloaded element count")

	if _, err := ws.Load("missing.tokens"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestFromArgs(t *testing.T) {
	doc, err := FromArgs([]string{"div", "h1##x", ""})
	if err != nil {
		t.Fatal(err)
	}

	assert(t, 3, len(doc.Elements), "element count")
	assert(t, "", doc.Name, "document name")
	assert(t, 1, doc.Elements[1].Line, "argument index")
	assert(t, "", doc.Elements[1].Position().File, "argument file")

	// empty id, ignored id and empty tag name
	assert(t, 3, len(doc.Warnings), "warning count")
	assert(t, "arg 3:1: element has no tag name", doc.Warnings[2].String(), "warning text")
}

func TestAppend(t *testing.T) {
	a, _ := FromArgs([]string{"div"})
	b, _ := FromArgs([]string{"span", ""})

	doc := Append(a, b)

	assert(t, 3, len(doc.Elements), "element count")
	assert(t, 1, len(doc.Warnings), "warning count")
	assert(t, 1, len(a.Elements), "original element count")
}
