package caption

import (
	"regexp"
	"strings"

	"github.com/tsawler/tablecloth/model"
	"github.com/tsawler/tablecloth/textlayer"
)

const (
	// DefaultMargin is how far above the table the caption search extends,
	// in layout units.
	DefaultMargin = 50.0

	// horizontalPad widens the search rectangle past the table edges so
	// captions that are not flush with the table are still considered.
	horizontalPad = 20.0
)

// Pattern matches a caption heading: the word "Table", case-insensitively,
// followed by optional whitespace and an identifier of digits, dots, or
// colons ("Table 3.1", "Table: 2"). The leading word boundary rejects
// words that merely start with "table".
const Pattern = `(?i)\btable\s*[0-9.:]+`

var captionRE = regexp.MustCompile(Pattern)

// Locate searches the region directly above a table for a caption line.
//
// The table box arrives in the detection engine's bottom-left convention;
// the text blocks arrive in the text layer's top-left convention. The page
// height bridges the two. The search rectangle spans horizontally from the
// table's left edge minus horizontalPad to its right edge plus
// horizontalPad, and vertically from margin units above the table's top
// edge down to the top edge itself. Intersecting blocks are scanned
// closest-to-table first; the first block matching the caption pattern
// wins, with its internal line breaks collapsed to single spaces.
//
// A miss is a normal outcome: Locate returns a Caption with Found false
// and never fails.
func Locate(tableBBox model.BBox, pageHeight float64, blocks []textlayer.Block, margin float64) model.Caption {
	if margin <= 0 {
		margin = DefaultMargin
	}

	table := tableBBox.ToTopLeft(pageHeight)
	topY := table.Top()
	search := model.NewBBox(
		table.Left()-horizontalPad,
		topY-margin,
		table.Right()+horizontalPad,
		topY,
		model.OriginTopLeft,
	)

	hits := textlayer.InRegion(blocks, search)

	// Bottom-to-top: the block nearest the table is checked first.
	for i := len(hits) - 1; i >= 0; i-- {
		if captionRE.MatchString(hits[i].Text) {
			return model.Caption{Text: collapseLines(hits[i].Text), Found: true}
		}
	}

	return model.Caption{}
}

// collapseLines folds internal line breaks (and any surrounding
// whitespace) into single spaces and trims the result.
func collapseLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
