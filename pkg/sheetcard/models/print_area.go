package models

// Area is a rectangular cell range (1-based, inclusive) used to restrict
// which part of a sheet is loaded, e.g. a print area or a caller-given range.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Merge converts the area into 0-based merge coordinates.
func (a Area) Merge() Merge {
	return Merge{StartRow: a.R1 - 1, StartCol: a.C1 - 1, EndRow: a.R2 - 1, EndCol: a.C2 - 1}
}
