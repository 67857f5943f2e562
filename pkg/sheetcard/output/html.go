package output

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
)

// WriteHTML renders r as HTML tables. Spans are emitted verbatim as
// rowspan/colspan attributes and merge members are left out.
func WriteHTML(w io.Writer, r models.Renderable) error {
	var b strings.Builder
	switch r.Mode {
	case models.ViewTable:
		renderTableHTML(&b, r)
	case models.ViewPivoted:
		renderCardsHTML(&b, r)
	default:
		return fmt.Errorf("unsupported view mode: %s", r.Mode)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderTableHTML(b *strings.Builder, r models.Renderable) {
	fmt.Fprintf(b, "<table class=\"sheet\" data-sheet=\"%s\">\n", html.EscapeString(r.SheetName))
	b.WriteString("<thead>\n")
	for _, row := range r.HeaderRows {
		b.WriteString("<tr>")
		for _, c := range row {
			writeCell(b, "th", c)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</thead>\n<tbody>\n")
	for _, row := range r.Rows {
		b.WriteString("<tr>")
		for _, c := range row {
			writeCell(b, "td", c)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func renderCardsHTML(b *strings.Builder, r models.Renderable) {
	for i, rec := range r.Records {
		fmt.Fprintf(b, "<table class=\"record\" data-record=\"%d\" data-row=\"%d\">\n<tbody>\n", i+1, rec.Row+1)
		for j, strip := range rec.HeaderCells {
			b.WriteString("<tr>")
			for _, c := range strip {
				writeCell(b, "th", c)
			}
			writeCell(b, "td", rec.DataCells[j])
			b.WriteString("</tr>\n")
		}
		b.WriteString("</tbody>\n</table>\n")
	}
}

func writeCell(b *strings.Builder, tag string, c models.Cell) {
	if c.IsAbsent() {
		return
	}
	b.WriteString("<" + tag)
	if c.RowSpan > 1 {
		fmt.Fprintf(b, " rowspan=\"%d\"", c.RowSpan)
	}
	if c.ColSpan > 1 {
		fmt.Fprintf(b, " colspan=\"%d\"", c.ColSpan)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(c.Value.String()))
	b.WriteString("</" + tag + ">")
}
