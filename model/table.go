package model

// RawTable is a table exactly as the detection engine produced it: a grid
// of cell text plus the page and bounding box it came from. The BBox is in
// the detection engine's bottom-left-origin convention. A RawTable is
// never mutated after construction.
type RawTable struct {
	Page int        // 1-indexed page number
	BBox BBox       // bottom-left origin
	Rows [][]string // row-major cell text
}

// RowCount returns the number of rows, including the header candidate.
func (t RawTable) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t RawTable) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// Caption is a table caption or its explicit absence. A missing caption is
// a normal outcome, not an error, and is distinct from an empty string:
// Found is false when no caption block matched.
type Caption struct {
	Text  string
	Found bool
}

// NormalizedTable is a cleaned table ready for rendering: the first raw
// row promoted to a header with blank and placeholder columns removed,
// every data row carrying exactly len(Header) cells, and the caption the
// locator attached, if any.
type NormalizedTable struct {
	Header  []string
	Rows    [][]string
	Caption Caption
}

// RowCount returns the number of data rows (the header is not counted).
func (t NormalizedTable) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns.
func (t NormalizedTable) ColCount() int {
	return len(t.Header)
}

// Document is the ordered set of normalized tables extracted from one
// source file, in detection order.
type Document struct {
	Source string // base name of the source file, used for rendering only
	Tables []NormalizedTable
}
