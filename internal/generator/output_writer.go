package generator

import (
	"io"
	"strings"
)

const indentUnit = "  "

// outputWriter keeps the indentation counter and the first write error, later
// writes are dropped once one has failed.
type outputWriter struct {
	w           io.Writer
	indentation int
	err         error
}

func (w *outputWriter) indent(delta int) {
	w.indentation += delta
}

func (w *outputWriter) write(str string) {
	if w.err != nil {
		return
	}

	_, w.err = io.WriteString(w.w, str)
}

func (w *outputWriter) writeIndentation() {
	w.write(strings.Repeat(indentUnit, max(0, w.indentation)))
}

func (w *outputWriter) WriteOpenTag(tag, id string, classes []string) {
	w.writeIndentation()
	w.write("<" + tag)

	if id != "" {
		w.write(` id="` + id + `"`)
	}

	if len(classes) > 0 {
		w.write(` class="` + strings.Join(classes, " ") + `"`)
	}
}

func (w *outputWriter) WritePlaceholders(attrs []string) {
	for _, attr := range attrs {
		w.write(" " + attr + `="valeur_` + attr + `"`)
	}
}

func (w *outputWriter) WriteLiteral(str string) {
	w.write(str)
}

func (w *outputWriter) WriteCloseTag(tag string) {
	w.write("\n")
	w.writeIndentation()
	w.write("</" + tag + ">")
}
