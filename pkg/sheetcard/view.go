package sheetcard

import (
	"fmt"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/table"
)

// ViewOptions selects how a loaded sheet is presented.
type ViewOptions struct {
	// HeaderRows is the number of leading header rows. It must be at least 1
	// and leave one data row.
	HeaderRows int
	// HeaderMode is "single" or "composite". Empty means single.
	HeaderMode string
	// Mode is "table" or "pivoted" (aliases "desktop" and "mobile").
	// Empty means pivoted.
	Mode string
}

// View presents the named sheet of wb. An empty sheetName selects the
// first sheet.
func View(wb *models.Workbook, sheetName string, opts ViewOptions) (models.Renderable, error) {
	if len(wb.Sheets) == 0 {
		return models.Renderable{}, errors.Parse("workbook has no sheets")
	}
	sheet := &wb.Sheets[0]
	if sheetName != "" {
		s, ok := wb.Sheet(sheetName)
		if !ok {
			return models.Renderable{}, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
		}
		sheet = s
	}

	headerMode, err := table.ParseHeaderMode(opts.HeaderMode)
	if err != nil {
		return models.Renderable{}, err
	}
	mode := models.ViewPivoted
	if opts.Mode != "" {
		m, err := models.ParseViewMode(opts.Mode)
		if err != nil {
			return models.Renderable{}, errors.Wrap(errors.KindConfig, err, "invalid view options")
		}
		mode = m
	}

	view, err := table.NewTableView(*sheet, opts.HeaderRows, headerMode)
	if err != nil {
		return models.Renderable{}, err
	}
	return table.Select(mode, view)
}
