package models

import "fmt"

// TableView is a sheet split into header rows and data rows.
type TableView struct {
	SheetName string `json:"sheetName"`
	// Headers holds one label per column.
	Headers []string `json:"headers"`
	// Rows holds every row of the sheet, header rows included.
	Rows Grid `json:"rows"`
	// HeaderRowCount is the number of leading rows treated as header.
	HeaderRowCount int `json:"headerRowCount"`
}

// HeaderRows returns the leading header rows.
func (v TableView) HeaderRows() Grid {
	return v.Rows[:v.HeaderRowCount]
}

// DataRows returns the rows following the header.
func (v TableView) DataRows() Grid {
	return v.Rows[v.HeaderRowCount:]
}

// PivotedRecord is the card layout of one data row.
// HeaderCells[i] is the header strip of the i-th kept column and
// DataCells[i] that column's value for the record.
type PivotedRecord struct {
	// Row is the index of the source row within TableView.Rows.
	Row         int      `json:"row"`
	HeaderCells [][]Cell `json:"headerCells"`
	DataCells   []Cell   `json:"dataCells"`
}

// ViewMode selects how a TableView is presented.
type ViewMode string

const (
	// ViewTable presents headers and rows as they are.
	ViewTable ViewMode = "table"
	// ViewPivoted presents one PivotedRecord per data row.
	ViewPivoted ViewMode = "pivoted"
)

// ParseViewMode parses "table" or "pivoted". "mobile" and "desktop" are
// accepted as aliases.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "table", "desktop":
		return ViewTable, nil
	case "pivoted", "mobile":
		return ViewPivoted, nil
	default:
		return "", fmt.Errorf("invalid view mode: %s (must be table or pivoted)", s)
	}
}

// Renderable is the output of view selection.
type Renderable struct {
	Mode      ViewMode `json:"mode"`
	SheetName string   `json:"sheetName"`
	Headers   []string `json:"headers"`
	// HeaderRows is set in table mode.
	HeaderRows Grid `json:"headerRows,omitempty"`
	// Rows holds the data rows in table mode.
	Rows Grid `json:"rows,omitempty"`
	// Records is set in pivoted mode.
	Records []PivotedRecord `json:"records,omitempty"`
}
