// Command tablecloth extracts tables from a PDF document and writes them
// to a styled, self-contained HTML file.
//
// Usage:
//
//	tablecloth [flags] input.pdf
//
// Flags:
//
//	-o, -output  output HTML file path (default "tables_output.html")
//	-m, -margin  caption search margin in layout units (default 50)
//	-rich        preserve line breaks inside cells as HTML breaks
//	-no-captions skip the caption search
//	-write-empty write the page shell even when no tables are found
//	-style       YAML file overriding the table styling
//	-v           verbose (debug) logging
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/tablecloth"
	"github.com/tsawler/tablecloth/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tablecloth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		output     string
		margin     int
		rich       bool
		noCaptions bool
		writeEmpty bool
		stylePath  string
		verbose    bool
	)
	fs.StringVar(&output, "o", "tables_output.html", "output HTML file path")
	fs.StringVar(&output, "output", "tables_output.html", "output HTML file path")
	fs.IntVar(&margin, "m", 50, "caption search margin in layout units")
	fs.IntVar(&margin, "margin", 50, "caption search margin in layout units")
	fs.BoolVar(&rich, "rich", false, "preserve line breaks inside cells as HTML breaks")
	fs.BoolVar(&noCaptions, "no-captions", false, "skip the caption search")
	fs.BoolVar(&writeEmpty, "write-empty", false, "write the page shell even when no tables are found")
	fs.StringVar(&stylePath, "style", "", "YAML file overriding the table styling")
	fs.BoolVar(&verbose, "v", false, "verbose (debug) logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] input.pdf\n\nExtract tables from a PDF and export to styled HTML.\n\nFlags:\n", fs.Name())
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	input := fs.Arg(0)
	if _, err := os.Stat(input); err != nil {
		fmt.Fprintf(stderr, "Error: file not found: %s\n", input)
		return 1
	}

	fmt.Fprintf(stdout, "Processing PDF: %s\n", input)

	ext := tablecloth.Open(input).Margin(float64(margin))
	if rich {
		ext = ext.RichText()
	}
	if noCaptions {
		ext = ext.NoCaptions()
	}
	if writeEmpty {
		ext = ext.WriteIfEmpty()
	}
	if stylePath != "" {
		style, err := render.LoadStyle(stylePath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		ext = ext.WithStyle(style)
	}
	if verbose {
		ext = ext.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, wrote, err := ext.WriteHTML(output)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if len(doc.Tables) == 0 {
		fmt.Fprintln(stdout, "No tables found in the PDF.")
		if wrote {
			fmt.Fprintf(stdout, "Saved HTML to: %s\n", output)
		}
		return 0
	}

	for i, t := range doc.Tables {
		fmt.Fprintf(stdout, "Table %d: %d rows x %d columns\n", i+1, t.RowCount(), t.ColCount())
	}
	fmt.Fprintf(stdout, "\nSaved HTML to: %s\n", output)
	return 0
}
