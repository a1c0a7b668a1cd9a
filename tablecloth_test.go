package tablecloth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/tablecloth/model"
)

// fakeEngine returns canned tables, letting pipeline tests run without a
// real PDF.
type fakeEngine struct {
	tables []model.RawTable
	err    error
}

func (f *fakeEngine) Tables(path string, pages []int) ([]model.RawTable, error) {
	return f.tables, f.err
}

func (f *fakeEngine) Name() string { return "fake" }

func rawFixture() model.RawTable {
	return model.RawTable{
		Page: 1,
		BBox: model.NewBBox(72, 500, 500, 692, model.OriginBottomLeft),
		Rows: [][]string{
			{"", "Name", "Unnamed: 2", "Score"},
			{"x", "Alice", "y", "9"},
		},
	}
}

func TestOpenEmptyFilename(t *testing.T) {
	if _, err := Open("").Tables(); err == nil {
		t.Error("expected error for empty filename")
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.pdf")).Tables()
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestChainImmutability(t *testing.T) {
	base := Open("doc.pdf")
	withPages := base.Pages(1, 2)
	withMore := withPages.Pages(3)

	if len(base.options.pages) != 0 {
		t.Error("base extractor mutated by Pages")
	}
	if len(withPages.options.pages) != 2 {
		t.Errorf("expected 2 pages, got %d", len(withPages.options.pages))
	}
	if len(withMore.options.pages) != 3 {
		t.Errorf("expected cumulative pages, got %d", len(withMore.options.pages))
	}

	rich := base.RichText()
	if base.options.mode == rich.options.mode {
		t.Error("RichText mutated the base extractor")
	}
}

func TestPageRange(t *testing.T) {
	e := Open("doc.pdf").PageRange(2, 5)
	if len(e.options.pages) != 4 || e.options.pages[0] != 2 || e.options.pages[3] != 5 {
		t.Errorf("unexpected pages: %v", e.options.pages)
	}
}

func TestMarginIgnoresNonPositive(t *testing.T) {
	base := Open("doc.pdf")
	if got := base.Margin(-5).options.margin; got != base.options.margin {
		t.Errorf("negative margin must keep default, got %f", got)
	}
	if got := base.Margin(75).options.margin; got != 75 {
		t.Errorf("expected margin 75, got %f", got)
	}
}

func TestDocumentWithFakeEngine(t *testing.T) {
	doc, err := Open("report.pdf").
		WithEngine(&fakeEngine{tables: []model.RawTable{rawFixture()}}).
		NoCaptions().
		Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Source != "report.pdf" {
		t.Errorf("expected source report.pdf, got %q", doc.Source)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(doc.Tables))
	}
	tbl := doc.Tables[0]
	if len(tbl.Header) != 2 || tbl.Header[0] != "Name" || tbl.Header[1] != "Score" {
		t.Errorf("unexpected header: %v", tbl.Header)
	}
	if tbl.Caption.Found {
		t.Error("captions disabled, none expected")
	}
}

func TestDocumentSkipsDegenerateTables(t *testing.T) {
	degenerate := model.RawTable{
		Page: 1,
		Rows: [][]string{{"", "Unnamed: 1"}, {"a", "b"}},
	}

	doc, err := Open("report.pdf").
		WithEngine(&fakeEngine{tables: []model.RawTable{degenerate, rawFixture()}}).
		NoCaptions().
		Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Errorf("expected all-placeholder table to be dropped, got %d tables", len(doc.Tables))
	}
}

func TestDocumentZeroTables(t *testing.T) {
	doc, err := Open("report.pdf").
		WithEngine(&fakeEngine{}).
		NoCaptions().
		Document()
	if err != nil {
		t.Fatalf("zero tables must not be an error, got: %v", err)
	}
	if len(doc.Tables) != 0 {
		t.Errorf("expected no tables, got %d", len(doc.Tables))
	}
}

func TestHTMLWithFakeEngine(t *testing.T) {
	html, err := Open("report.pdf").
		WithEngine(&fakeEngine{tables: []model.RawTable{rawFixture()}}).
		NoCaptions().
		HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "Extracted Tables from <em>report.pdf</em>") {
		t.Error("expected source filename in shell")
	}
	if !strings.Contains(html, "Alice") {
		t.Error("expected table data in output")
	}
}

func TestWriteHTMLEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	doc, wrote, err := Open("report.pdf").
		WithEngine(&fakeEngine{}).
		NoCaptions().
		WriteHTML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wrote || len(doc.Tables) != 0 {
		t.Error("expected nothing written for an empty document")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no output file")
	}
}

func TestWriteHTMLWriteIfEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	_, wrote, err := Open("report.pdf").
		WithEngine(&fakeEngine{}).
		NoCaptions().
		WriteIfEmpty().
		WriteHTML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !wrote {
		t.Fatal("expected shell to be written")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Found 0 table(s)") {
		t.Error("expected zero-count shell")
	}
}

func TestEndToEndSamplePDF(t *testing.T) {
	path := filepath.Join("testdata", "tables.pdf")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("test PDF not found:", path)
	}

	doc, err := Open(path).Document()
	if err != nil {
		t.Fatalf("extraction failed: %v", err)
	}
	for i, tbl := range doc.Tables {
		for j, row := range tbl.Rows {
			if len(row) != len(tbl.Header) {
				t.Errorf("table %d row %d: %d cells for %d columns", i, j, len(row), len(tbl.Header))
			}
		}
	}
}
