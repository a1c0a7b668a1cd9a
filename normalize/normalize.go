package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/tablecloth/model"
)

// PlaceholderPattern matches auto-generated column labels of the form a
// fixed prefix token, a separator, and a number ("Unnamed: 0"), the
// convention upstream tabular serializers use when a column has no real
// header text.
const PlaceholderPattern = `^Unnamed[:. _-]*[0-9]+$`

var placeholderRE = regexp.MustCompile(PlaceholderPattern)

// Mode selects how embedded line breaks inside cells are handled.
type Mode int

const (
	// ModePlain deletes embedded line breaks. Cell values stay raw text
	// and are escaped at serialization time.
	ModePlain Mode = iota

	// ModeRich preserves embedded line breaks as explicit <br/> tokens.
	// Cell values are escaped here, before the tokens are inserted, and
	// must not be re-escaped downstream.
	ModeRich
)

// Options configures normalization.
type Options struct {
	Mode Mode
}

// Normalize cleans a raw extracted table: the first row is promoted to
// the column header, columns whose header is blank or a placeholder label
// are dropped from the header and every data row alike, ragged rows are
// repaired, and embedded line breaks are resolved per the mode.
//
// The second result is false when the table is skipped entirely (no rows
// at all); a skipped table is a normal outcome, not an error.
//
// Ragged-row policy: rows shorter than the raw header are padded with
// empty cells before column filtering; cells beyond the header width are
// dropped.
func Normalize(raw model.RawTable, opts Options) (model.NormalizedTable, bool) {
	if len(raw.Rows) == 0 {
		return model.NormalizedTable{}, false
	}

	header := raw.Rows[0]
	keep := make([]int, 0, len(header))
	cleaned := make([]string, 0, len(header))
	for i, h := range header {
		name := strings.TrimSpace(norm.NFC.String(h))
		if name == "" || placeholderRE.MatchString(name) {
			continue
		}
		keep = append(keep, i)
		cleaned = append(cleaned, cell(name, opts.Mode))
	}

	out := model.NormalizedTable{Header: cleaned}
	for _, row := range raw.Rows[1:] {
		filtered := make([]string, 0, len(keep))
		for _, idx := range keep {
			var v string
			if idx < len(row) {
				v = row[idx]
			}
			filtered = append(filtered, cell(norm.NFC.String(v), opts.Mode))
		}
		out.Rows = append(out.Rows, filtered)
	}

	return out, true
}

// cell resolves embedded line breaks in one cell value per the mode.
func cell(v string, mode Mode) string {
	v = strings.ReplaceAll(v, "\r\n", "\n")
	v = strings.ReplaceAll(v, "\r", "\n")
	switch mode {
	case ModeRich:
		return strings.ReplaceAll(html.EscapeString(v), "\n", "<br/>")
	default:
		return strings.ReplaceAll(v, "\n", "")
	}
}
