// Package output serializes workbooks and rendered views.
package output

import (
	"encoding/json"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
)

// ToJSON serializes v to JSON, indented when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SheetListing is the JSON shape of a workbook without cell data.
type SheetListing struct {
	BookName string                `json:"bookName"`
	Sheets   []models.SheetSummary `json:"sheets"`
}

// Listing returns the sheet listing of wb.
func Listing(wb *models.Workbook) SheetListing {
	return SheetListing{BookName: wb.BookName, Sheets: wb.Summaries()}
}
