package models

// Workbook is the ordered set of sheets decoded from one file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"bookName"`
	// Sheets holds the decoded sheets in workbook order.
	Sheets []Sheet `json:"sheets"`
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}

// Summaries returns a summary per sheet in workbook order.
func (w *Workbook) Summaries() []SheetSummary {
	out := make([]SheetSummary, len(w.Sheets))
	for i, s := range w.Sheets {
		out[i] = s.Summary()
	}
	return out
}
