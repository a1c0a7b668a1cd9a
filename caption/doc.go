// Package caption locates table captions in a page's text layer.
//
// A caption is a short heading such as "Table 3.1: Results" placed near a
// table. [Locate] maps the table's bounding box from the detection
// engine's bottom-left coordinate convention into the text layer's
// top-left convention, builds a search rectangle above the table, and
// scans the intersecting text blocks from the closest outward for a line
// matching [Pattern]. Missing captions are a normal result, not an error.
package caption
