package tablecloth

import (
	"log/slog"

	"github.com/tsawler/tablecloth/caption"
	"github.com/tsawler/tablecloth/detect"
	"github.com/tsawler/tablecloth/normalize"
	"github.com/tsawler/tablecloth/render"
)

// ExtractOptions holds all configuration for an extraction run.
type ExtractOptions struct {
	// pages to process (1-indexed); empty means all pages
	pages []int

	// caption search margin above the table, in layout units
	margin float64

	// whether to search for captions at all
	captions bool

	// line-break handling inside cells
	mode normalize.Mode

	// write the page shell even when zero tables were found
	writeIfEmpty bool

	// inline table styling
	style render.Style

	// detection engine configuration
	detect detect.Config

	// debug logger; nil disables debug output
	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		margin:   caption.DefaultMargin,
		captions: true,
		mode:     normalize.ModePlain,
		style:    render.DefaultStyle(),
		detect:   detect.DefaultConfig(),
	}
}

// clone creates a deep copy of the options.
func (o ExtractOptions) clone() ExtractOptions {
	c := o
	c.pages = append([]int(nil), o.pages...)
	return c
}
