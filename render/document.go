package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/tablecloth/model"
)

// Config holds assembler configuration.
type Config struct {
	// Rich indicates cell values were pre-escaped with <br/> tokens
	// during normalization and must not be escaped again.
	Rich bool

	// WriteIfEmpty writes the page shell even when the document holds
	// zero tables. When false, WriteFile for an empty document is a
	// no-op.
	WriteIfEmpty bool

	// Style is the inline cell styling.
	Style Style
}

// DefaultConfig returns the default assembler configuration.
func DefaultConfig() Config {
	return Config{
		Rich:         false,
		WriteIfEmpty: false,
		Style:        DefaultStyle(),
	}
}

// Assembler concatenates normalized table fragments into one
// self-contained HTML document.
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration.
func NewAssembler() *Assembler {
	return NewAssemblerWithConfig(DefaultConfig())
}

// NewAssemblerWithConfig creates an assembler with custom configuration.
func NewAssemblerWithConfig(config Config) *Assembler {
	config.Style.defaults()
	return &Assembler{config: config}
}

const pageShell = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Extracted Tables from %s</title>
<style>
body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
.container { max-width: 95%%; margin: auto; background: #fff; padding: 20px; border-radius: 8px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
h1 { color: #0056b3; }
hr { border: 0; height: 1px; background: #ddd; margin: 40px 0; }
.table-container { overflow-x: auto; margin-bottom: 40px; }
</style>
</head>
<body>
<div class="container">
<h1>Extracted Tables from <em>%s</em></h1>
<p>Found %d table(s). The first row of each table was promoted to headers.</p>
<hr>
%s</div>
</body>
</html>
`

// Assemble renders the full HTML document for doc, one fragment per
// table in detection order.
func (a *Assembler) Assemble(doc model.Document) string {
	var body strings.Builder
	for _, t := range doc.Tables {
		body.WriteString(`<div class="table-container">`)
		body.WriteString("\n")
		body.WriteString(a.TableFragment(t))
		body.WriteString("</div>\n<hr>\n")
	}

	name := html.EscapeString(doc.Source)
	return fmt.Sprintf(pageShell, name, name, len(doc.Tables), body.String())
}

// Write renders doc to w.
func (a *Assembler) Write(w io.Writer, doc model.Document) error {
	if _, err := io.WriteString(w, a.Assemble(doc)); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// WriteFile renders doc to path. For a document with zero tables the file
// is only written when WriteIfEmpty is set; the first result reports
// whether a file was produced.
func (a *Assembler) WriteFile(path string, doc model.Document) (bool, error) {
	if len(doc.Tables) == 0 && !a.config.WriteIfEmpty {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("create output file: %w", err)
	}

	if err := a.Write(f, doc); err != nil {
		f.Close()
		return false, err
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close output file: %w", err)
	}
	return true, nil
}
