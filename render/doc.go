// Package render serializes normalized tables to a styled, self-contained
// HTML document.
//
// [Assembler] produces one fragment per table (caption heading, header
// row, zebra-striped data rows, fixed inline cell styles from [Style])
// and wraps them in a page shell carrying the source filename and the
// table count. Output order is detection order; the assembler never
// reshuffles tables.
//
// Styling is configurable through a YAML file loaded with [LoadStyle]:
//
//	border_color: "#ccc"
//	cell_padding: 6
//	header_background: "#e8e8f8"
package render
