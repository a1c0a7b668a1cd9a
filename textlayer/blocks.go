package textlayer

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/tablecloth/model"
)

const (
	// rowTolerance is the baseline Y tolerance for grouping runs into one line (points).
	rowTolerance = 3.0

	// lineGapFactor is the maximum baseline-to-baseline gap, as a multiple of
	// font size, for two lines to merge into one block.
	lineGapFactor = 1.6

	// wordGapFactor is the horizontal gap, as a multiple of font size, treated
	// as a word boundary when joining runs within a line.
	wordGapFactor = 0.3

	// defaultFontSize stands in for runs whose font size is missing or zero.
	defaultFontSize = 10.0
)

// Block is a unit of page text as the text layer reports it: one or more
// adjacent lines sharing a bounding box. Line breaks between the merged
// lines are preserved as newlines in Text. The box is in the
// top-left-origin convention.
type Block struct {
	BBox model.BBox
	Text string
}

// line is an intermediate row of runs, still in bottom-left coordinates.
type line struct {
	x0, x1   float64
	baseline float64
	size     float64
	text     string
}

// Blocks groups positioned text runs into ordered blocks. Runs are bucketed
// into lines by baseline, lines are merged into blocks when they are
// vertically adjacent and horizontally overlapping, and the resulting boxes
// are converted from the engine's bottom-left convention to top-left using
// the page height. Blocks come back in reading order, top of the page first.
func Blocks(runs []pdf.Text, pageHeight float64) []Block {
	lines := buildLines(runs)
	if len(lines) == 0 {
		return nil
	}

	// Top of the page first: descending baseline in bottom-left coordinates.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].baseline > lines[j].baseline
	})

	var blocks []Block
	group := []line{lines[0]}
	for _, ln := range lines[1:] {
		prev := group[len(group)-1]
		gap := prev.baseline - ln.baseline
		if gap <= lineGapFactor*maxf(prev.size, ln.size) && overlapsX(prev, ln) {
			group = append(group, ln)
			continue
		}
		blocks = append(blocks, finishBlock(group, pageHeight))
		group = []line{ln}
	}
	blocks = append(blocks, finishBlock(group, pageHeight))

	return blocks
}

// InRegion returns the blocks intersecting clip, ordered top-to-bottom.
// The clip must be in the top-left convention; boxes in another
// convention never match.
func InRegion(blocks []Block, clip model.BBox) []Block {
	var hits []Block
	for _, b := range blocks {
		if b.BBox.Intersects(clip) {
			hits = append(hits, b)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].BBox.Y0 < hits[j].BBox.Y0
	})
	return hits
}

// buildLines buckets runs by baseline and joins each bucket left to right.
func buildLines(runs []pdf.Text) []line {
	var kept []pdf.Text
	for _, r := range runs {
		if strings.TrimSpace(r.S) != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Y != kept[j].Y {
			return kept[i].Y > kept[j].Y
		}
		return kept[i].X < kept[j].X
	})

	var lines []line
	cur := newLine(kept[0])
	for _, r := range kept[1:] {
		if abs(r.Y-cur.baseline) <= rowTolerance {
			appendRun(&cur, r)
			continue
		}
		lines = append(lines, cur)
		cur = newLine(r)
	}
	lines = append(lines, cur)

	return lines
}

func newLine(r pdf.Text) line {
	return line{
		x0:       r.X,
		x1:       r.X + r.W,
		baseline: r.Y,
		size:     fontSize(r),
		text:     r.S,
	}
}

func appendRun(ln *line, r pdf.Text) {
	size := fontSize(r)
	if r.X-ln.x1 > wordGapFactor*size && !strings.HasSuffix(ln.text, " ") {
		ln.text += " "
	}
	ln.text += r.S
	if r.X < ln.x0 {
		ln.x0 = r.X
	}
	if r.X+r.W > ln.x1 {
		ln.x1 = r.X + r.W
	}
	if size > ln.size {
		ln.size = size
	}
}

// finishBlock collapses a group of lines into one Block with a
// top-left-origin bounding box. The box spans from the top line's
// ascender to the bottom line's baseline.
func finishBlock(group []line, pageHeight float64) Block {
	x0, x1 := group[0].x0, group[0].x1
	top := group[0].baseline + group[0].size
	bottom := group[len(group)-1].baseline

	parts := make([]string, 0, len(group))
	for _, ln := range group {
		parts = append(parts, ln.text)
		if ln.x0 < x0 {
			x0 = ln.x0
		}
		if ln.x1 > x1 {
			x1 = ln.x1
		}
	}

	bl := model.NewBBox(x0, bottom, x1, top, model.OriginBottomLeft)
	return Block{
		BBox: bl.ToTopLeft(pageHeight),
		Text: strings.Join(parts, "\n"),
	}
}

func fontSize(r pdf.Text) float64 {
	if r.FontSize > 0 {
		return r.FontSize
	}
	return defaultFontSize
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// overlapsX reports whether two lines share any horizontal extent.
func overlapsX(a, b line) bool {
	return a.x0 <= b.x1 && b.x0 <= a.x1
}
