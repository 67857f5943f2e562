// Package models defines the data structures shared by the sheetcard packages.
package models

// Cell is one position of a sheet grid.
type Cell struct {
	// Value is the displayed content, Absent for non-anchor merge members.
	Value Value `json:"value"`
	// Resolved is the logical value of the position: the anchor's value for
	// non-anchor merge members, Value otherwise.
	Resolved Value `json:"resolved"`
	// RowSpan is the number of rows the cell's merge covers (1 if not an anchor).
	RowSpan int `json:"rowSpan"`
	// ColSpan is the number of columns the cell's merge covers (1 if not an anchor).
	ColSpan int `json:"colSpan"`
}

// NewCell returns an unmerged cell holding v.
func NewCell(v Value) Cell {
	return Cell{Value: v, Resolved: v, RowSpan: 1, ColSpan: 1}
}

// IsAnchor reports whether c spans more than one position.
func (c Cell) IsAnchor() bool {
	return c.RowSpan > 1 || c.ColSpan > 1
}

// IsAbsent reports whether c is a non-anchor member of a merge.
func (c Cell) IsAbsent() bool {
	return c.Value.IsAbsent()
}

// IsEmpty reports whether neither the displayed nor the resolved value has content.
func (c Cell) IsEmpty() bool {
	return c.Value.IsEmpty() && c.Resolved.IsEmpty()
}

// Grid is a rectangular sequence of rows of cells.
type Grid [][]Cell

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the widest row.
func (g Grid) Cols() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// At returns the cell at (r, c), or a blank cell outside the grid.
func (g Grid) At(r, c int) Cell {
	if r < 0 || r >= len(g) || c < 0 || c >= len(g[r]) {
		return NewCell(BlankValue())
	}
	return g[r][c]
}
