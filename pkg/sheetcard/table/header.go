// Package table derives header labels, flat table views and pivoted
// per-record cards from a loaded sheet. All functions are pure.
package table

import (
	"fmt"
	"strings"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
)

// HeaderMode selects how multi-row headers become column labels.
type HeaderMode string

const (
	// HeaderSingle labels each column from the last header row.
	HeaderSingle HeaderMode = "single"
	// HeaderComposite joins the non-empty header rows with CompositeSeparator.
	HeaderComposite HeaderMode = "composite"
)

// CompositeSeparator joins header labels in HeaderComposite mode.
const CompositeSeparator = " - "

// ParseHeaderMode parses "single" or "composite" ("" means single).
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch HeaderMode(s) {
	case "", HeaderSingle:
		return HeaderSingle, nil
	case HeaderComposite:
		return HeaderComposite, nil
	default:
		return "", errors.Config("invalid header mode: %s (must be single or composite)", s)
	}
}

// ValidateHeaderRowCount checks that grid has data rows left after
// headerRowCount header rows.
func ValidateHeaderRowCount(grid models.Grid, headerRowCount int) error {
	if grid.Rows() < 2 {
		return errors.Parse("insufficient data: a header row and at least one data row are required, got %d rows", grid.Rows())
	}
	if headerRowCount < 1 || headerRowCount >= grid.Rows() {
		return errors.Config("header row count %d out of range: must be between 1 and %d", headerRowCount, grid.Rows()-1)
	}
	return nil
}

// ExtractHeaders returns one label per column of grid.
func ExtractHeaders(grid models.Grid, headerRowCount int, mode HeaderMode) ([]string, error) {
	if err := ValidateHeaderRowCount(grid, headerRowCount); err != nil {
		return nil, err
	}

	cols := grid.Cols()
	headers := make([]string, cols)
	switch mode {
	case "", HeaderSingle:
		for c := range headers {
			headers[c] = grid.At(headerRowCount-1, c).Value.String()
		}
	case HeaderComposite:
		for c := range headers {
			var parts []string
			for r := 0; r < headerRowCount; r++ {
				if s := grid.At(r, c).Value.String(); s != "" {
					parts = append(parts, s)
				}
			}
			headers[c] = strings.Join(parts, CompositeSeparator)
		}
	default:
		return nil, errors.Config("invalid header mode: %s", mode)
	}
	return headers, nil
}

// NewTableView splits sheet into headerRowCount header rows and data rows.
func NewTableView(sheet models.Sheet, headerRowCount int, mode HeaderMode) (models.TableView, error) {
	headers, err := ExtractHeaders(sheet.Grid, headerRowCount, mode)
	if err != nil {
		return models.TableView{}, fmt.Errorf("sheet %q: %w", sheet.Name, err)
	}
	return models.TableView{
		SheetName:      sheet.Name,
		Headers:        headers,
		Rows:           sheet.Grid,
		HeaderRowCount: headerRowCount,
	}, nil
}

// WithHeaderRows re-derives view for a different header row count.
// The previous view is left untouched.
func WithHeaderRows(view models.TableView, headerRowCount int, mode HeaderMode) (models.TableView, error) {
	return NewTableView(models.Sheet{Name: view.SheetName, Grid: view.Rows}, headerRowCount, mode)
}
