// Package tablecloth extracts tabular data from PDF documents and renders
// it as a styled, self-contained HTML page.
//
// Table geometry detection and text-layer extraction are delegated to
// external engines; tablecloth cleans what they return (header promotion,
// degenerate-column removal), associates nearby captions by geometric
// proximity, and assembles the result into one HTML document.
//
// Basic usage:
//
//	html, err := tablecloth.Open("report.pdf").HTML()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	doc, wrote, err := tablecloth.Open("report.pdf").
//	    Pages(1, 2, 3).
//	    Margin(75).
//	    RichText().
//	    WriteHTML("tables.html")
//
// For advanced use cases the lower-level detect, caption, normalize, and
// render packages are also available.
package tablecloth

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/tsawler/tablecloth/caption"
	"github.com/tsawler/tablecloth/detect"
	"github.com/tsawler/tablecloth/model"
	"github.com/tsawler/tablecloth/normalize"
	"github.com/tsawler/tablecloth/reader"
	"github.com/tsawler/tablecloth/render"
	"github.com/tsawler/tablecloth/textlayer"
)

// Extractor provides a fluent interface for extracting tables from a PDF.
// Each configuration method returns a new Extractor instance, making it
// safe to fork a chain and allowing method chaining. Terminal operations
// (Tables, Document, HTML, WriteHTML) run the extraction.
type Extractor struct {
	filename string
	engine   detect.Engine
	options  ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// Open prepares an Extractor for the given PDF file. No work happens
// until a terminal operation is called; the document handle is opened
// then and released before the terminal operation returns.
//
// Example:
//
//	html, err := tablecloth.Open("document.pdf").HTML()
func Open(filename string) *Extractor {
	e := &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
	if filename == "" {
		e.err = fmt.Errorf("no filename specified")
	}
	return e
}

// clone creates a copy of the Extractor with deep-copied options. This
// ensures immutability: each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		engine:   e.engine,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts extraction to the given pages (1-indexed). Multiple
// calls are cumulative.
func (e *Extractor) Pages(pages ...int) *Extractor {
	c := e.clone()
	c.options.pages = append(c.options.pages, pages...)
	return c
}

// PageRange restricts extraction to a range of pages (1-indexed,
// inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	c := e.clone()
	for i := start; i <= end; i++ {
		c.options.pages = append(c.options.pages, i)
	}
	return c
}

// Margin sets the caption search margin: how far above a table, in
// layout units, the caption search extends. Values outside (0, ∞) keep
// the default.
func (e *Extractor) Margin(units float64) *Extractor {
	c := e.clone()
	if units > 0 {
		c.options.margin = units
	}
	return c
}

// NoCaptions disables the caption search entirely. Tables are rendered
// without headings and the text layer is never opened.
func (e *Extractor) NoCaptions() *Extractor {
	c := e.clone()
	c.options.captions = false
	return c
}

// RichText preserves line breaks inside cells as explicit HTML break
// tokens. The default (plain) mode deletes them.
func (e *Extractor) RichText() *Extractor {
	c := e.clone()
	c.options.mode = normalize.ModeRich
	return c
}

// WriteIfEmpty makes WriteHTML produce the page shell even when no
// tables were detected. By default an empty result writes nothing.
func (e *Extractor) WriteIfEmpty() *Extractor {
	c := e.clone()
	c.options.writeIfEmpty = true
	return c
}

// WithStyle replaces the inline table styling.
func (e *Extractor) WithStyle(style render.Style) *Extractor {
	c := e.clone()
	c.options.style = style
	return c
}

// WithEngine replaces the table detection engine. The default is the
// tabula-backed engine.
func (e *Extractor) WithEngine(engine detect.Engine) *Extractor {
	c := e.clone()
	c.engine = engine
	return c
}

// WithLogger attaches a logger for debug output about filtered tables,
// detection warnings, and text-layer trouble.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	c := e.clone()
	c.options.logger = logger
	return c
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Tables runs extraction and returns the normalized tables in detection
// order. Zero tables is a normal result with a nil error.
func (e *Extractor) Tables() ([]model.NormalizedTable, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Tables, nil
}

// Document runs extraction and returns the document: every detected
// table normalized, captioned (unless disabled), in detection order.
//
// The text-layer handle is opened once for the caption search and
// released before Document returns, on every exit path.
func (e *Extractor) Document() (model.Document, error) {
	if e.err != nil {
		return model.Document{}, e.err
	}

	raws, err := e.resolveEngine().Tables(e.filename, e.options.pages)
	if err != nil {
		return model.Document{}, err
	}

	doc := model.Document{Source: filepath.Base(e.filename)}
	if len(raws) == 0 {
		return doc, nil
	}

	var textDoc *reader.Document
	if e.options.captions {
		textDoc, err = reader.Open(e.filename)
		if err != nil {
			return model.Document{}, fmt.Errorf("open text layer: %w", err)
		}
		defer textDoc.Close()
	}

	blockCache := make(map[int][]textlayer.Block)
	for _, raw := range raws {
		table, ok := normalize.Normalize(raw, normalize.Options{Mode: e.options.mode})
		if !ok || table.ColCount() == 0 {
			e.logger().Debug("table skipped after normalization", "page", raw.Page)
			continue
		}

		if textDoc != nil {
			blocks, cached := blockCache[raw.Page]
			if !cached {
				var berr error
				blocks, berr = textDoc.TextBlocks(raw.Page)
				if berr != nil {
					e.logger().Debug("text layer unavailable", "page", raw.Page, "error", berr)
					blocks = nil
				}
				blockCache[raw.Page] = blocks
			}
			table.Caption = caption.Locate(raw.BBox, textDoc.PageHeight(raw.Page), blocks, e.options.margin)
		}

		doc.Tables = append(doc.Tables, table)
	}

	return doc, nil
}

// HTML runs extraction and renders the full HTML document as a string.
func (e *Extractor) HTML() (string, error) {
	doc, err := e.Document()
	if err != nil {
		return "", err
	}
	return e.assembler().Assemble(doc), nil
}

// WriteHTML runs extraction and writes the HTML document to path. The
// bool result reports whether a file was written: an empty document
// writes nothing unless WriteIfEmpty was set. The returned Document
// lets callers report per-table summaries.
func (e *Extractor) WriteHTML(path string) (model.Document, bool, error) {
	doc, err := e.Document()
	if err != nil {
		return model.Document{}, false, err
	}
	wrote, err := e.assembler().WriteFile(path, doc)
	if err != nil {
		return doc, false, err
	}
	return doc, wrote, nil
}

func (e *Extractor) resolveEngine() detect.Engine {
	if e.engine != nil {
		return e.engine
	}
	cfg := e.options.detect
	cfg.Logger = e.options.logger
	return detect.NewTabulaEngineWithConfig(cfg)
}

func (e *Extractor) assembler() *render.Assembler {
	return render.NewAssemblerWithConfig(render.Config{
		Rich:         e.options.mode == normalize.ModeRich,
		WriteIfEmpty: e.options.writeIfEmpty,
		Style:        e.options.style,
	})
}

func (e *Extractor) logger() *slog.Logger {
	if e.options.logger != nil {
		return e.options.logger
	}
	return noopLogger
}

// noopLogger backs the default logger so debug calls need no nil checks.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
