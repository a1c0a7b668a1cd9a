// Package model provides the data types shared across table extraction:
// coordinate-tagged geometry, raw and normalized tables, and captions.
//
// # Geometry
//
// [BBox] is a bounding box tagged with its coordinate convention via
// [Origin]. Detection engines produce boxes in [OriginBottomLeft] (the
// PDF convention); text-layer engines produce [OriginTopLeft] boxes.
// Conversions between the two require the page height and are explicit:
//
//	topLeft := box.ToTopLeft(pageHeight)
//
// [BBox.Intersects] refuses to compare boxes in different conventions,
// which turns a silent geometry bug into a visible non-match.
//
// # Tables
//
// [RawTable] is the detection engine's output, immutable once produced.
// [NormalizedTable] is the cleaned form: header promoted from the first
// row, degenerate columns dropped, a constant cell count per row, and an
// optional [Caption]. [Document] collects the normalized tables of one
// run in detection order.
package model
