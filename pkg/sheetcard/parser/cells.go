// Package parser reads worksheets through excelize and turns them into
// cleaned, merge-annotated grids.
package parser

import (
	"fmt"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads every row of a sheet as classified values.
// With raw set, cell values are read without number formats applied.
// Only cells stored as numbers can become Number; string cells stay Text
// even when they look numeric ("007").
func ReadSheet(f *excelize.File, sheetName string, raw bool) ([][]models.Value, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: raw})
	if err != nil {
		return nil, err
	}

	values := make([][]models.Value, len(rows))
	for r, row := range rows {
		values[r] = make([]models.Value, len(row))
		for c, cell := range row {
			if cell == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheetName, name)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", name, err)
			}
			values[r][c] = classify(cell, typ)
		}
	}
	return values, nil
}

func classify(s string, typ excelize.CellType) models.Value {
	switch typ {
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
		return models.ParseValue(s)
	default:
		return models.TextValue(s)
	}
}

// ReadMerges returns the merged ranges of a sheet in 0-based coordinates.
func ReadMerges(f *excelize.File, sheetName string) ([]models.Merge, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	merges := make([]models.Merge, 0, len(cells))
	for _, mc := range cells {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, fmt.Errorf("merge start %q: %w", mc.GetStartAxis(), err)
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merge end %q: %w", mc.GetEndAxis(), err)
		}
		merges = append(merges, models.Merge{
			StartRow: startRow - 1,
			StartCol: startCol - 1,
			EndRow:   endRow - 1,
			EndCol:   endCol - 1,
		})
	}
	return merges, nil
}

// Dimension returns the A1 range of a rows x cols block whose top-left cell
// is origin (1-based), or "" for an empty block.
func Dimension(origin models.Area, rows, cols int) string {
	if rows == 0 || cols == 0 {
		return ""
	}
	r1, c1 := max(origin.R1, 1), max(origin.C1, 1)
	m := models.Merge{StartRow: r1 - 1, StartCol: c1 - 1, EndRow: r1 + rows - 2, EndCol: c1 + cols - 2}
	return m.Ref()
}
