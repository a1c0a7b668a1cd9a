package reader

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/tablecloth/textlayer"
)

// defaultPageHeight is US Letter height in points, used when a page has
// no usable MediaBox.
const defaultPageHeight = 792.0

// maxParentDepth bounds the MediaBox inheritance walk.
const maxParentDepth = 8

// Document is an open handle to a PDF's text layer. It is a scoped
// resource: opened once per run and released with Close on every exit
// path.
type Document struct {
	path      string
	file      *os.File
	reader    *pdf.Reader
	pageCount int
	closed    bool
}

// Open validates the document and opens its text layer. Validation runs
// first so a corrupt file fails here, before any detection work starts.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	ctx, err := api.ReadValidateAndOptimize(f, pdfcpumodel.NewDefaultConfiguration())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	pageCount := ctx.PageCount
	f.Close()

	file, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read text layer of %s: %w", path, err)
	}

	return &Document{
		path:      path,
		file:      file,
		reader:    r,
		pageCount: pageCount,
	}, nil
}

// PageCount returns the number of pages reported by validation.
func (d *Document) PageCount() int {
	return d.pageCount
}

// PageHeight returns the height of the given page (1-indexed) from its
// MediaBox, walking up the page tree for inherited boxes and falling
// back to US Letter when none is usable.
func (d *Document) PageHeight(pageNumber int) float64 {
	if d.closed || pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return defaultPageHeight
	}

	node := d.reader.Page(pageNumber).V
	for depth := 0; depth < maxParentDepth && !node.IsNull(); depth++ {
		if h, ok := mediaBoxHeight(node.Key("MediaBox")); ok {
			return h
		}
		node = node.Key("Parent")
	}
	return defaultPageHeight
}

// TextBlocks returns the ordered text blocks of the given page
// (1-indexed) in the top-left-origin convention. The underlying parser
// panics on some malformed content streams; that is reported as an
// error, not propagated.
func (d *Document) TextBlocks(pageNumber int) (blocks []textlayer.Block, err error) {
	if d.closed {
		return nil, fmt.Errorf("document %s is closed", d.path)
	}
	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return nil, fmt.Errorf("page %d out of range 1..%d", pageNumber, d.reader.NumPage())
	}

	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("extract text of page %d: %v", pageNumber, r)
		}
	}()

	page := d.reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	return textlayer.Blocks(content.Text, d.PageHeight(pageNumber)), nil
}

// Close releases the underlying file handle. It is safe to call Close
// multiple times.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.file != nil {
		if err := d.file.Close(); err != nil {
			return fmt.Errorf("close %s: %w", d.path, err)
		}
	}
	return nil
}

// mediaBoxHeight extracts the height from a MediaBox array value.
func mediaBoxHeight(box pdf.Value) (float64, bool) {
	if box.IsNull() || box.Kind() != pdf.Array || box.Len() != 4 {
		return 0, false
	}

	coords := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v := box.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			coords[i] = float64(v.Int64())
		case pdf.Real:
			coords[i] = v.Float64()
		default:
			return 0, false
		}
	}

	height := coords[3] - coords[1]
	if height <= 0 {
		return 0, false
	}
	return height, true
}
