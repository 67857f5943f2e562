package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Merge is a merged range in 0-based, inclusive coordinates.
type Merge struct {
	StartRow int `json:"startRow"`
	StartCol int `json:"startCol"`
	EndRow   int `json:"endRow"`
	EndCol   int `json:"endCol"`
}

// RowSpan returns the number of rows covered.
func (m Merge) RowSpan() int { return m.EndRow - m.StartRow + 1 }

// ColSpan returns the number of columns covered.
func (m Merge) ColSpan() int { return m.EndCol - m.StartCol + 1 }

// Contains reports whether (r, c) lies inside m.
func (m Merge) Contains(r, c int) bool {
	return r >= m.StartRow && r <= m.EndRow && c >= m.StartCol && c <= m.EndCol
}

// Overlaps reports whether m and o share at least one position.
func (m Merge) Overlaps(o Merge) bool {
	return m.StartRow <= o.EndRow && o.StartRow <= m.EndRow &&
		m.StartCol <= o.EndCol && o.StartCol <= m.EndCol
}

// Valid reports whether m has non-negative coordinates and end >= start.
func (m Merge) Valid() bool {
	return m.StartRow >= 0 && m.StartCol >= 0 && m.EndRow >= m.StartRow && m.EndCol >= m.StartCol
}

// Ref returns the range in A1 notation, e.g. "A1:B2".
func (m Merge) Ref() string {
	start, err := excelize.CoordinatesToCellName(m.StartCol+1, m.StartRow+1)
	if err != nil {
		return ""
	}
	end, err := excelize.CoordinatesToCellName(m.EndCol+1, m.EndRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", start, end)
}
