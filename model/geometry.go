package model

import "math"

// Origin identifies the corner of the page a bounding box's coordinates
// are measured from. Table detection engines report boxes in the PDF
// convention (origin bottom-left, y grows upward), while text-layer
// engines report them raster-style (origin top-left, y grows downward).
// Carrying the convention on the box itself prevents silent mix-ups
// between the two.
type Origin int

const (
	// OriginBottomLeft is the PDF coordinate convention.
	OriginBottomLeft Origin = iota
	// OriginTopLeft is the text-layer coordinate convention.
	OriginTopLeft
)

// String returns a human-readable name for the origin convention.
func (o Origin) String() string {
	switch o {
	case OriginBottomLeft:
		return "bottom-left"
	case OriginTopLeft:
		return "top-left"
	default:
		return "unknown"
	}
}

// BBox represents a bounding box (rectangle) on a page, tagged with the
// coordinate convention its values are expressed in. X0/Y0 is always the
// numerically smaller corner and X1/Y1 the larger one; what "top" means
// depends on the Origin tag.
type BBox struct {
	X0, Y0, X1, Y1 float64
	Origin         Origin
}

// NewBBox creates a bounding box from two corner coordinates, normalizing
// them so that X0 <= X1 and Y0 <= Y1.
func NewBBox(x0, y0, x1, y1 float64, origin Origin) BBox {
	return BBox{
		X0:     math.Min(x0, x1),
		Y0:     math.Min(y0, y1),
		X1:     math.Max(x0, x1),
		Y1:     math.Max(y0, y1),
		Origin: origin,
	}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() float64 {
	return b.X0
}

// Right returns the right edge X coordinate.
func (b BBox) Right() float64 {
	return b.X1
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Top returns the Y coordinate of the visually highest edge of the box.
// In the bottom-left convention that is the larger Y value; in the
// top-left convention it is the smaller one.
func (b BBox) Top() float64 {
	if b.Origin == OriginBottomLeft {
		return b.Y1
	}
	return b.Y0
}

// Bottom returns the Y coordinate of the visually lowest edge of the box.
func (b BBox) Bottom() float64 {
	if b.Origin == OriginBottomLeft {
		return b.Y0
	}
	return b.Y1
}

// ToTopLeft converts the box to the top-left-origin convention using the
// page height. Boxes already in that convention are returned unchanged.
func (b BBox) ToTopLeft(pageHeight float64) BBox {
	if b.Origin == OriginTopLeft {
		return b
	}
	return NewBBox(b.X0, pageHeight-b.Y1, b.X1, pageHeight-b.Y0, OriginTopLeft)
}

// ToBottomLeft converts the box to the bottom-left-origin convention using
// the page height. Boxes already in that convention are returned unchanged.
func (b BBox) ToBottomLeft(pageHeight float64) BBox {
	if b.Origin == OriginBottomLeft {
		return b
	}
	return NewBBox(b.X0, pageHeight-b.Y1, b.X1, pageHeight-b.Y0, OriginBottomLeft)
}

// SameOrigin reports whether both boxes use the same coordinate convention.
func (b BBox) SameOrigin(other BBox) bool {
	return b.Origin == other.Origin
}

// Intersects checks if two bounding boxes intersect. Boxes expressed in
// different conventions never intersect; callers must convert first.
func (b BBox) Intersects(other BBox) bool {
	if !b.SameOrigin(other) {
		return false
	}
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// IsValid returns true if the bounding box has positive dimensions.
func (b BBox) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// IsEmpty returns true if the bounding box has zero area.
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}
