package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lojf/ecaplanner/internal/catalog"
	"github.com/lojf/ecaplanner/internal/importer"
)

var errHelp = errors.New("help provided")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "ecaimport: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("ecaimport", flag.ContinueOnError)
	fs.SetOutput(stdout)
	in := fs.String("in", "eca_data.csv", "CSV export to read")
	out := fs.String("out", "eca_data.json", "catalog document to write (.json, .yaml or .yml)")
	source := fs.String("source", importer.DefaultOptions.Source, "meta.source of the document")
	term := fs.String("term", importer.DefaultOptions.Term, "meta.term of the document")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return err
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	acts, err := importer.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}
	doc, st := importer.BuildDocument(acts, importer.Options{Source: *source, Term: *term})

	if err := writeDocument(*out, doc); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "parsed %d rows from %s\n", len(acts), *in)
	fmt.Fprintf(stdout, "duplicates dropped: %d\n", st.Duplicates)
	fmt.Fprintf(stdout, "activities: %d (free %d, paid %d)\n", doc.Meta.TotalActivities, st.Free, st.Paid)
	fmt.Fprintln(stdout, "by category:")
	for _, c := range importer.ByCount(st.Categories) {
		fmt.Fprintf(stdout, "  %s: %d\n", c.Key, c.Count)
	}
	fmt.Fprintln(stdout, "by level:")
	for _, c := range importer.ByCount(st.Levels) {
		fmt.Fprintf(stdout, "  %s: %d\n", c.Key, c.Count)
	}
	fmt.Fprintf(stdout, "written to %s\n", *out)
	return nil
}

func writeDocument(path string, doc catalog.Document) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := catalog.Encode(f, doc, catalog.FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
