package detect

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/tabula"
	tabmodel "github.com/tsawler/tabula/model"

	"github.com/tsawler/tablecloth/model"
)

// Engine is the interface to a table detection engine. Implementations
// return the tables of a document in detection order, with bounding boxes
// in the engine's native bottom-left-origin convention.
type Engine interface {
	// Tables detects tables in the document at path. An empty pages slice
	// selects all pages (1-indexed otherwise). Zero detected tables is a
	// normal result, not an error.
	Tables(path string, pages []int) ([]model.RawTable, error)

	// Name returns the engine name.
	Name() string
}

// Config holds detection engine configuration.
type Config struct {
	// MinRows is the minimum row count for a table to be kept.
	MinRows int

	// MinCols is the minimum column count for a table to be kept.
	MinCols int

	// MinConfidence is the detection confidence threshold (0-1).
	MinConfidence float64

	// Logger receives debug output; nil disables it.
	Logger *slog.Logger
}

// DefaultConfig returns default engine configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:       2,
		MinCols:       2,
		MinConfidence: 0.5,
	}
}

// TabulaEngine detects tables with the tabula library's geometric
// detector.
type TabulaEngine struct {
	config Config
	logger *slog.Logger
}

// NewTabulaEngine creates an engine with default configuration.
func NewTabulaEngine() *TabulaEngine {
	return NewTabulaEngineWithConfig(DefaultConfig())
}

// NewTabulaEngineWithConfig creates an engine with custom configuration.
func NewTabulaEngineWithConfig(config Config) *TabulaEngine {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TabulaEngine{config: config, logger: logger}
}

// Name returns the engine's identifier ("tabula").
func (e *TabulaEngine) Name() string {
	return "tabula"
}

// Tables runs detection over the selected pages and maps the results into
// RawTables, filtering out tables below the configured minimums.
func (e *TabulaEngine) Tables(path string, pages []int) ([]model.RawTable, error) {
	ext := tabula.Open(path)
	if len(pages) > 0 {
		ext = ext.Pages(pages...)
	}

	doc, warnings, err := ext.Document()
	if err != nil {
		return nil, fmt.Errorf("detect tables in %s: %w", path, err)
	}
	if len(warnings) > 0 {
		e.logger.Debug("detection warnings", "count", len(warnings), "detail", tabula.FormatWarnings(warnings))
	}

	var out []model.RawTable
	for _, page := range doc.Pages {
		for _, t := range page.ExtractTables() {
			if !e.keep(t) {
				e.logger.Debug("table filtered",
					"page", page.Number,
					"rows", t.RowCount(),
					"cols", t.ColCount(),
					"confidence", t.Confidence)
				continue
			}
			out = append(out, fromTabula(t, page.Number))
		}
	}

	return out, nil
}

func (e *TabulaEngine) keep(t *tabmodel.Table) bool {
	return t.RowCount() >= e.config.MinRows &&
		t.ColCount() >= e.config.MinCols &&
		t.Confidence >= e.config.MinConfidence
}

// fromTabula maps a detected table into the shared RawTable form. The
// detector reports boxes as X/Y/Width/Height in PDF bottom-left
// coordinates; the result carries corner coordinates with the origin tag.
func fromTabula(t *tabmodel.Table, pageNumber int) model.RawTable {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, c.Text)
		}
		rows = append(rows, cells)
	}

	return model.RawTable{
		Page: pageNumber,
		BBox: model.NewBBox(t.BBox.Left(), t.BBox.Bottom(), t.BBox.Right(), t.BBox.Top(), model.OriginBottomLeft),
		Rows: rows,
	}
}
