package models

// Sheet is one decoded worksheet. It is not modified after loading.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Grid holds the cleaned, merge-annotated cells.
	Grid Grid `json:"grid"`
	// Merges lists the merged ranges applied to Grid.
	Merges []Merge `json:"merges,omitempty"`
	// SkippedMerges lists merged ranges that could not be applied because
	// they overlap an earlier range or lie outside the cleaned grid.
	SkippedMerges []Merge `json:"skippedMerges,omitempty"`
	// Dimension is the A1 range covered by Grid, e.g. "A1:D10" ("" if empty).
	Dimension string `json:"dimension"`
}

// SheetSummary describes a sheet without its cells.
type SheetSummary struct {
	Name      string `json:"name"`
	Dimension string `json:"dimension"`
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Merges    int    `json:"merges"`
}

// Summary returns the sheet's summary.
func (s Sheet) Summary() SheetSummary {
	return SheetSummary{
		Name:      s.Name,
		Dimension: s.Dimension,
		Rows:      s.Grid.Rows(),
		Cols:      s.Grid.Cols(),
		Merges:    len(s.Merges),
	}
}
