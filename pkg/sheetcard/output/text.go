package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
)

// LabelSeparator joins the header strip of a card row in text output.
const LabelSeparator = " / "

// WriteText renders r as plain-text tables: one table in table mode, one
// two-column card per record in pivoted mode.
func WriteText(w io.Writer, r models.Renderable) error {
	switch r.Mode {
	case models.ViewTable:
		return writeTextTable(w, r)
	case models.ViewPivoted:
		return writeTextCards(w, r)
	default:
		return fmt.Errorf("unsupported view mode: %s", r.Mode)
	}
}

func writeTextTable(w io.Writer, r models.Renderable) error {
	t := tablewriter.NewWriter(w)
	t.Header(r.Headers)
	for _, row := range r.Rows {
		if err := t.Append(cellTexts(row)); err != nil {
			return err
		}
	}
	return t.Render()
}

func writeTextCards(w io.Writer, r models.Renderable) error {
	for i, rec := range r.Records {
		if _, err := fmt.Fprintf(w, "Record %d/%d (row %d)\n", i+1, len(r.Records), rec.Row+1); err != nil {
			return err
		}
		t := tablewriter.NewWriter(w)
		t.Header([]string{"Field", "Value"})
		for j, strip := range rec.HeaderCells {
			if err := t.Append([]string{StripLabel(strip), rec.DataCells[j].Value.String()}); err != nil {
				return err
			}
		}
		if err := t.Render(); err != nil {
			return err
		}
	}
	return nil
}

// StripLabel joins the non-empty labels of a header strip. Placeholders
// contribute their resolved label, since text output has no spans.
func StripLabel(strip []models.Cell) string {
	var parts []string
	for _, c := range strip {
		s := c.Value.String()
		if c.IsAbsent() {
			s = c.Resolved.String()
		}
		if s != "" && (len(parts) == 0 || parts[len(parts)-1] != s) {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, LabelSeparator)
}

func cellTexts(row []models.Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = c.Value.String()
	}
	return out
}
