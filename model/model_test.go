package model

import "testing"

func TestNewBBoxNormalizesCorners(t *testing.T) {
	b := NewBBox(100, 200, 50, 150, OriginBottomLeft)
	if b.X0 != 50 || b.X1 != 100 {
		t.Errorf("expected X0=50 X1=100, got X0=%f X1=%f", b.X0, b.X1)
	}
	if b.Y0 != 150 || b.Y1 != 200 {
		t.Errorf("expected Y0=150 Y1=200, got Y0=%f Y1=%f", b.Y0, b.Y1)
	}
}

func TestTopBottomDependOnOrigin(t *testing.T) {
	bl := NewBBox(0, 100, 50, 300, OriginBottomLeft)
	if bl.Top() != 300 {
		t.Errorf("bottom-left Top: expected 300, got %f", bl.Top())
	}
	if bl.Bottom() != 100 {
		t.Errorf("bottom-left Bottom: expected 100, got %f", bl.Bottom())
	}

	tl := NewBBox(0, 100, 50, 300, OriginTopLeft)
	if tl.Top() != 100 {
		t.Errorf("top-left Top: expected 100, got %f", tl.Top())
	}
	if tl.Bottom() != 300 {
		t.Errorf("top-left Bottom: expected 300, got %f", tl.Bottom())
	}
}

func TestToTopLeftConversion(t *testing.T) {
	const pageHeight = 792.0

	// A table near the top of the page in PDF coordinates.
	b := NewBBox(72, 600, 500, 700, OriginBottomLeft)
	tl := b.ToTopLeft(pageHeight)

	if tl.Origin != OriginTopLeft {
		t.Fatalf("expected top-left origin, got %s", tl.Origin)
	}
	if tl.Y0 != 92 || tl.Y1 != 192 {
		t.Errorf("expected Y0=92 Y1=192, got Y0=%f Y1=%f", tl.Y0, tl.Y1)
	}
	if tl.Top() != 92 {
		t.Errorf("expected Top=92, got %f", tl.Top())
	}

	// X coordinates are untouched by the flip.
	if tl.X0 != 72 || tl.X1 != 500 {
		t.Errorf("expected X unchanged, got X0=%f X1=%f", tl.X0, tl.X1)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	const pageHeight = 842.0

	b := NewBBox(10, 20, 200, 400, OriginBottomLeft)
	back := b.ToTopLeft(pageHeight).ToBottomLeft(pageHeight)

	if back != b {
		t.Errorf("round trip changed box: %+v != %+v", back, b)
	}
}

func TestConversionIsIdempotentForSameOrigin(t *testing.T) {
	b := NewBBox(10, 20, 200, 400, OriginTopLeft)
	if got := b.ToTopLeft(842); got != b {
		t.Errorf("ToTopLeft on a top-left box changed it: %+v", got)
	}
}

func TestIntersectsRequiresSameOrigin(t *testing.T) {
	a := NewBBox(0, 0, 100, 100, OriginBottomLeft)
	b := NewBBox(50, 50, 150, 150, OriginTopLeft)

	if a.Intersects(b) {
		t.Error("boxes in different conventions must not intersect")
	}
	if !a.Intersects(b.ToBottomLeft(100)) {
		t.Error("expected intersection after conversion")
	}
}

func TestIntersects(t *testing.T) {
	a := NewBBox(0, 0, 100, 100, OriginTopLeft)

	tests := []struct {
		name string
		b    BBox
		want bool
	}{
		{"overlapping", NewBBox(50, 50, 150, 150, OriginTopLeft), true},
		{"touching edge", NewBBox(100, 0, 200, 100, OriginTopLeft), true},
		{"disjoint", NewBBox(101, 101, 200, 200, OriginTopLeft), false},
		{"contained", NewBBox(25, 25, 75, 75, OriginTopLeft), true},
	}

	for _, tt := range tests {
		if got := a.Intersects(tt.b); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestRawTableCounts(t *testing.T) {
	rt := RawTable{
		Page: 1,
		Rows: [][]string{
			{"a", "b", "c"},
			{"1", "2", "3"},
		},
	}
	if rt.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", rt.RowCount())
	}
	if rt.ColCount() != 3 {
		t.Errorf("expected 3 cols, got %d", rt.ColCount())
	}

	var empty RawTable
	if empty.ColCount() != 0 {
		t.Errorf("empty table: expected 0 cols, got %d", empty.ColCount())
	}
}

func TestCaptionAbsentIsDistinctFromEmpty(t *testing.T) {
	var absent Caption
	if absent.Found {
		t.Error("zero caption must report not found")
	}
	found := Caption{Text: "Table 1: Results", Found: true}
	if !found.Found || found.Text == "" {
		t.Error("found caption must carry non-empty text")
	}
}
