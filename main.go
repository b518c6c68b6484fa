package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pipe01/htmlgen/internal/generator"
	"github.com/pipe01/htmlgen/internal/parser/ast"
	"github.com/pipe01/htmlgen/internal/voidtags"
	"github.com/pipe01/htmlgen/internal/workspace"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const (
	version    = "1.0.0"
	outputFile = "outGenhtml.html"
)

var (
	tokensFile   = kingpin.Flag("from", "Read whitespace separated elements from a file, before the ones given as arguments").Short('f').ExistingFile()
	voidTagsFile = kingpin.Flag("void-tags", "HCL file adding to or replacing the self-closing element table").ExistingFile()
	watch        = kingpin.Flag("watch", "Watch the input files for changes and regenerate automatically").Short('w').Bool()
	listVoidTags = kingpin.Flag("list-void-tags", "Print the self-closing element table and exit").Bool()
	verbose      = kingpin.Flag("verbose", "Log more, repeat for debug output").Short('v').Counter()
	elements     = kingpin.Arg("elements", "Shorthand elements, e.g. div.container h1#title p/").Strings()

	log = commonlog.GetLogger("htmlgen")
)

func main() {
	kingpin.Version(version)
	kingpin.CommandLine.Help = "HTML generator: turns shorthand elements into indented markup saved to " + outputFile
	kingpin.Parse()

	commonlog.Configure(*verbose, nil)

	if *listVoidTags {
		tbl, err := loadVoidTags()
		if err != nil {
			kingpin.Fatalf("failed to load void tags: %s", err)
		}

		printVoidTags(tbl)
		return
	}

	if len(*elements) == 0 && *tokensFile == "" {
		kingpin.Fatalf("required argument 'elements' not provided")
	}

	wd, _ := os.Getwd()
	ws := workspace.New(wd)

	if *watch {
		err := watchFiles(ws)
		if err != nil {
			kingpin.Fatalf("failed to watch files: %s", err)
		}
	} else {
		err := generate(ws)
		if err != nil {
			kingpin.Fatalf("failed to generate HTML: %s", err)
		}
	}
}

func loadVoidTags() (*voidtags.Table, error) {
	if *voidTagsFile == "" {
		return voidtags.Default(), nil
	}

	log.Debugf("loading void tags from %q", *voidTagsFile)

	return voidtags.Load(*voidTagsFile)
}

func printVoidTags(tbl *voidtags.Table) {
	for _, tag := range tbl.Tags() {
		attrs, _ := tbl.Lookup(tag)
		fmt.Printf("%s: %s\n", tag, strings.Join(attrs, ", "))
	}
}

func loadDocument(ws *workspace.Workspace) (*ast.Document, error) {
	args, err := workspace.FromArgs(*elements)
	if err != nil {
		return nil, fmt.Errorf("parse arguments: %w", err)
	}

	if *tokensFile == "" {
		return args, nil
	}

	doc, err := ws.Load(*tokensFile)
	if err != nil {
		return nil, fmt.Errorf("load file %q: %w", *tokensFile, err)
	}

	return workspace.Append(doc, args), nil
}

func generate(ws *workspace.Workspace) error {
	tbl, err := loadVoidTags()
	if err != nil {
		return fmt.Errorf("load void tags: %w", err)
	}

	doc, err := loadDocument(ws)
	if err != nil {
		return err
	}

	logWarnings(doc.Warnings)

	res, err := writeOutput(outputFile, doc, generator.Options{VoidTags: tbl})
	if err != nil {
		return err
	}

	logWarnings(res.Warnings)

	if len(res.Drained) > 0 {
		log.Infof("closed %d element(s) left open: %s", len(res.Drained), strings.Join(res.Drained, ", "))
	}

	fmt.Printf("HTML generated successfully and saved to %s\n", outputFile)

	return nil
}

func writeOutput(outPath string, doc *ast.Document, opts generator.Options) (*generator.Result, error) {
	log.Debugf("rendering %d element(s) to %q", len(doc.Elements), outPath)

	outf, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	res, err := generator.Visit(outf, doc.Elements, opts)
	if err != nil {
		outf.Close()
		return nil, fmt.Errorf("generate output: %w", err)
	}

	if err := outf.Close(); err != nil {
		return nil, fmt.Errorf("close output file: %w", err)
	}

	return res, nil
}

func logWarnings(warnings []ast.Warning) {
	for _, w := range warnings {
		log.Warning(w.String())
	}
}

func watchFiles(ws *workspace.Workspace) error {
	if *tokensFile == "" && *voidTagsFile == "" {
		return errors.New("nothing to watch, pass --from or --void-tags")
	}

	if err := generate(ws); err != nil {
		log.Errorf("failed to generate HTML: %s", err)
	}

	watcher, err := NewWatcher(ws)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	for _, f := range []string{*tokensFile, *voidTagsFile} {
		if f == "" {
			continue
		}

		err = watcher.WatchFile(f)
		if err != nil {
			return fmt.Errorf("watch file %q: %w", f, err)
		}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	log.Notice("watching files for changes...")

	<-ch
	return watcher.Close()
}
