package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/tablecloth/model"
)

// TableFragment serializes one normalized table to an HTML fragment: an
// optional caption heading, then a table with one <th> row and one <tr>
// per data row, every cell styled inline. When rich is true the cell
// values were already escaped (with <br/> tokens inserted) during
// normalization and are written through verbatim; in plain mode they are
// escaped here.
func (a *Assembler) TableFragment(t model.NormalizedTable) string {
	var sb strings.Builder

	if t.Caption.Found {
		sb.WriteString("<h3>")
		sb.WriteString(html.EscapeString(t.Caption.Text))
		sb.WriteString("</h3>\n")
	}

	sb.WriteString(`<table style="border-collapse:collapse;width:100%;font-size:0.9em;">` + "\n")

	sb.WriteString("<thead>\n<tr>\n")
	for _, h := range t.Header {
		fmt.Fprintf(&sb, "<th style=%q>%s</th>\n", a.config.Style.headerCSS(), a.cell(h))
	}
	sb.WriteString("</tr>\n</thead>\n")

	sb.WriteString("<tbody>\n")
	for i, row := range t.Rows {
		if (i+1)%2 == 0 {
			fmt.Fprintf(&sb, "<tr style=%q>\n", a.config.Style.stripeCSS())
		} else {
			sb.WriteString("<tr>\n")
		}
		for _, v := range row {
			fmt.Fprintf(&sb, "<td style=%q>%s</td>\n", a.config.Style.cellCSS(), a.cell(v))
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")

	return sb.String()
}

// cell prepares a cell value for output; plain-mode values still need
// escaping, rich-mode values must pass through untouched so the <br/>
// tokens survive.
func (a *Assembler) cell(v string) string {
	if a.config.Rich {
		return v
	}
	return html.EscapeString(v)
}
