package table

import (
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/errors"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
)

// Select presents view in the given mode.
func Select(mode models.ViewMode, view models.TableView) (models.Renderable, error) {
	out := models.Renderable{
		Mode:      mode,
		SheetName: view.SheetName,
		Headers:   view.Headers,
	}
	switch mode {
	case models.ViewTable:
		out.HeaderRows = view.HeaderRows()
		out.Rows = view.DataRows()
	case models.ViewPivoted:
		out.Records = Pivot(view)
	default:
		return models.Renderable{}, errors.Config("invalid view mode: %s", mode)
	}
	return out, nil
}
