package parser

import "github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"

// BuildGrid annotates a rectangular-or-ragged value grid with merged ranges.
//
// Ragged rows are padded with blanks first. For every merge the top-left
// cell becomes the anchor carrying the span, and every other covered position
// holds an Absent value whose Resolved value is the anchor's value.
//
// Merges are clipped to the grid; merges starting outside it, invalid merges
// and merges overlapping an earlier applied merge are returned in skipped.
// Merges that clip down to a single cell are neither applied nor skipped.
func BuildGrid(values [][]models.Value, merges []models.Merge) (grid models.Grid, applied, skipped []models.Merge) {
	width := 0
	for _, row := range values {
		if len(row) > width {
			width = len(row)
		}
	}

	grid = make(models.Grid, len(values))
	for r, row := range values {
		grid[r] = make([]models.Cell, width)
		for c := 0; c < width; c++ {
			v := models.BlankValue()
			if c < len(row) {
				v = row[c]
			}
			grid[r][c] = models.NewCell(v)
		}
	}

	for _, m := range merges {
		if !m.Valid() || m.StartRow >= len(grid) || m.StartCol >= width {
			skipped = append(skipped, m)
			continue
		}
		m.EndRow = min(m.EndRow, len(grid)-1)
		m.EndCol = min(m.EndCol, width-1)
		if m.RowSpan() == 1 && m.ColSpan() == 1 {
			continue
		}
		if overlapsAny(m, applied) {
			skipped = append(skipped, m)
			continue
		}
		applyMerge(grid, m)
		applied = append(applied, m)
	}
	return grid, applied, skipped
}

func applyMerge(grid models.Grid, m models.Merge) {
	anchor := grid[m.StartRow][m.StartCol].Value
	grid[m.StartRow][m.StartCol] = models.Cell{
		Value:    anchor,
		Resolved: anchor,
		RowSpan:  m.RowSpan(),
		ColSpan:  m.ColSpan(),
	}
	for r := m.StartRow; r <= m.EndRow; r++ {
		for c := m.StartCol; c <= m.EndCol; c++ {
			if r == m.StartRow && c == m.StartCol {
				continue
			}
			grid[r][c] = models.Cell{
				Value:    models.AbsentValue(),
				Resolved: anchor,
				RowSpan:  1,
				ColSpan:  1,
			}
		}
	}
}

func overlapsAny(m models.Merge, merges []models.Merge) bool {
	for _, o := range merges {
		if m.Overlaps(o) {
			return true
		}
	}
	return false
}
