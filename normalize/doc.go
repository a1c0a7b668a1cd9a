// Package normalize cleans raw extracted tables for rendering.
//
// Detection engines hand back tables verbatim: the header sits in the
// first data row, columns with no real header carry blank or
// auto-generated placeholder labels (see [PlaceholderPattern]), and cell
// text may contain embedded line breaks. [Normalize] promotes the header,
// drops the degenerate columns consistently from every row, repairs
// ragged rows, and resolves line breaks according to [Mode].
package normalize
