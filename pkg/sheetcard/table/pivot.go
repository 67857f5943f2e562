package table

import "github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"

// Pivot turns every data row of view into a card: the i-th kept column
// becomes the i-th row of the card, its header strip on one side and the
// record's value on the other. Records keep the source row order.
func Pivot(view models.TableView) []models.PivotedRecord {
	if view.HeaderRowCount < 0 || view.HeaderRowCount > len(view.Rows) {
		return nil
	}
	headerRows := view.HeaderRows()
	width := view.Rows.Cols()

	records := make([]models.PivotedRecord, 0, len(view.Rows)-view.HeaderRowCount)
	for i, row := range view.DataRows() {
		headers, data := PivotRow(headerRows, padCells(row, width))
		records = append(records, models.PivotedRecord{
			Row:         view.HeaderRowCount + i,
			HeaderCells: headers,
			DataCells:   data,
		})
	}
	return records
}

// PivotRow builds the card of a single data row.
//
// A column is left out when the data cell is a merge member without a
// resolved value, or when every cell of its header strip is empty. Header
// cells swap RowSpan and ColSpan because the header axis now runs down the
// card. Non-anchor header members stay as Absent placeholders so that an
// inverted span above them keeps lining up. The data cell carries the
// resolved value, which fills merge members with their anchor's content.
func PivotRow(headerRows models.Grid, row []models.Cell) (headers [][]models.Cell, data []models.Cell) {
	for c, cell := range row {
		if cell.Value.IsAbsent() && cell.Resolved.IsEmpty() {
			continue
		}

		strip := make([]models.Cell, len(headerRows))
		informative := false
		for h, headerRow := range headerRows {
			hc := models.NewCell(models.BlankValue())
			if c < len(headerRow) {
				hc = headerRow[c]
			}
			if !hc.IsEmpty() {
				informative = true
			}
			strip[h] = transposeHeader(hc)
		}
		if !informative {
			continue
		}

		value := cell.Resolved
		if value.IsEmpty() {
			value = cell.Value
		}
		headers = append(headers, strip)
		data = append(data, models.NewCell(value))
	}
	return headers, data
}

func transposeHeader(hc models.Cell) models.Cell {
	if hc.IsAbsent() {
		return models.Cell{Value: models.AbsentValue(), Resolved: hc.Resolved, RowSpan: 1, ColSpan: 1}
	}
	return models.Cell{
		Value:    hc.Value,
		Resolved: hc.Value,
		RowSpan:  max(hc.ColSpan, 1),
		ColSpan:  max(hc.RowSpan, 1),
	}
}

func padCells(row []models.Cell, width int) []models.Cell {
	if len(row) >= width {
		return row
	}
	out := make([]models.Cell, width)
	copy(out, row)
	for i := len(row); i < width; i++ {
		out[i] = models.NewCell(models.BlankValue())
	}
	return out
}
