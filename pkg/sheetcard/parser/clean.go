package parser

import "github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"

// TrimValues removes trailing empty rows, then trailing empty columns, and
// pads the remaining rows to equal length. Interior empty rows and columns
// are kept. A grid with no content yields an empty (non-nil) grid.
func TrimValues(values [][]models.Value) [][]models.Value {
	return trimTrailing(values, models.Value.IsEmpty, models.BlankValue())
}

// TrimGrid is TrimValues for merge-annotated cells. A cell counts as empty
// only if both its displayed and resolved values are empty, so members of a
// merge with content are never trimmed.
func TrimGrid(grid models.Grid) models.Grid {
	return trimTrailing(grid, models.Cell.IsEmpty, models.NewCell(models.BlankValue()))
}

func trimTrailing[T any](rows [][]T, empty func(T) bool, blank T) [][]T {
	lastRow := len(rows) - 1
	for lastRow >= 0 && allEmpty(rows[lastRow], empty) {
		lastRow--
	}
	rows = rows[:lastRow+1]

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	lastCol := width - 1
	for ; lastCol >= 0; lastCol-- {
		colEmpty := true
		for _, row := range rows {
			if lastCol < len(row) && !empty(row[lastCol]) {
				colEmpty = false
				break
			}
		}
		if !colEmpty {
			break
		}
	}

	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = padRow(row, lastCol+1, blank)
	}
	return out
}

func allEmpty[T any](row []T, empty func(T) bool) bool {
	for _, v := range row {
		if !empty(v) {
			return false
		}
	}
	return true
}

// padRow copies row into a new slice of exactly width elements.
func padRow[T any](row []T, width int, blank T) []T {
	out := make([]T, width)
	n := copy(out, row)
	for i := n; i < width; i++ {
		out[i] = blank
	}
	return out
}
