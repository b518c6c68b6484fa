package main

import (
	"fmt"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/pipe01/htmlgen/internal/generator"
	"github.com/pipe01/htmlgen/internal/lexer"
	"github.com/pipe01/htmlgen/internal/parser/ast"
	"github.com/pipe01/htmlgen/internal/workspace"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "htmlgen"

var version string = "1.0.0"
var handler protocol.Handler

var (
	documentsMu sync.Mutex
	documents   = map[string]string{}
)

var log = commonlog.GetLogger(lsName)

func main() {
	commonlog.Configure(1, nil)

	protocol.SetTraceValue(protocol.TraceValueMessage)

	handler = protocol.Handler{
		Initialize:  initialize,
		Initialized: initialized,
		Shutdown:    shutdown,
		SetTrace:    setTrace,
		TextDocumentDidOpen: func(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
			setDocument(params.TextDocument.URI, params.TextDocument.Text)

			return handleDocument(context, params.TextDocument.URI)
		},
		TextDocumentDidChange: func(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
			content, ok := getDocument(params.TextDocument.URI)
			if !ok {
				return nil
			}

			for _, change := range params.ContentChanges {
				switch change := change.(type) {
				case protocol.TextDocumentContentChangeEventWhole:
					content = change.Text

				case protocol.TextDocumentContentChangeEvent:
					startIndex, endIndex := change.Range.IndexesIn(content)
					content = content[:startIndex] + change.Text + content[endIndex:]
				}
			}

			setDocument(params.TextDocument.URI, content)

			return handleDocument(context, params.TextDocument.URI)
		},
		TextDocumentDidClose: func(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
			documentsMu.Lock()
			delete(documents, params.TextDocument.URI)
			documentsMu.Unlock()

			return nil
		},
		TextDocumentHover: hover,
	}

	server := server.NewServer(&handler, lsName, false)

	server.RunStdio()
}

func getDocument(docURI string) (string, bool) {
	documentsMu.Lock()
	defer documentsMu.Unlock()

	content, ok := documents[docURI]
	return content, ok
}

func setDocument(docURI, content string) {
	documentsMu.Lock()
	defer documentsMu.Unlock()

	documents[docURI] = content
}

func loadDocument(docURI string) (*ast.Document, error) {
	url, err := url.Parse(docURI)
	if err != nil {
		return nil, fmt.Errorf("parse document uri: %w", err)
	}
	if url.Scheme != "file" {
		return nil, fmt.Errorf("invalid document uri scheme %q", url.Scheme)
	}

	contents, ok := getDocument(docURI)
	if !ok {
		return nil, nil
	}

	ws := workspace.New(filepath.Dir(url.Path))

	return ws.LoadWithContents(filepath.Base(url.Path), []byte(contents))
}

func handleDocument(context *glsp.Context, docURI string) error {
	var diag []protocol.Diagnostic

	doc, err := loadDocument(docURI)
	if err != nil {
		diag = []protocol.Diagnostic{errorDiagnostic(err)}
	} else if doc == nil {
		return nil
	} else {
		_, res := generator.Generate(doc.Elements, generator.Options{})
		diag = diagnose(doc, res)
	}

	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: diag,
	})

	return nil
}

func hover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, err := loadDocument(params.TextDocument.URI)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	return hoverAt(doc, lexer.Location{
		Line:   int(params.Position.Line),
		Column: int(params.Position.Character),
	}), nil
}

func initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := handler.CreateServerCapabilities()

	log.Infof("initializing %s %s", lsName, version)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
