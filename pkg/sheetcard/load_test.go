package sheetcard

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newWorkbook builds a two-sheet workbook:
// "Staff" has a two-row header with A1:B1 merged and a vertically merged
// region column; "Notes" has trailing blank content only.
func newWorkbook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	require.NoError(t, f.SetSheetName("Sheet1", "Staff"))
	rows := map[string]any{
		"A1": "Person", "C1": "Region",
		"A2": "Name", "B2": "Age", "C2": "",
		"A3": "Ada", "B3": 36, "C3": "North",
		"A4": "Linus", "B4": 0,
	}
	for cell, v := range rows {
		require.NoError(t, f.SetCellValue("Staff", cell, v))
	}
	require.NoError(t, f.MergeCell("Staff", "A1", "B1"))
	require.NoError(t, f.MergeCell("Staff", "C1", "C2"))
	require.NoError(t, f.MergeCell("Staff", "C3", "C4"))

	_, err := f.NewSheet("Notes")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notes", "A1", "note"))
	require.NoError(t, f.SetCellValue("Notes", "B2", "text"))
	return f
}

func writeBuffer(t *testing.T, f *excelize.File) *bytes.Buffer {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestLoad(t *testing.T) {
	wb, err := Load(context.Background(), writeBuffer(t, newWorkbook(t)), Options{BookName: "staff.xlsx"})
	require.NoError(t, err)

	assert.Equal(t, "staff.xlsx", wb.BookName)
	assert.Equal(t, []string{"Staff", "Notes"}, wb.SheetNames())

	staff, ok := wb.Sheet("Staff")
	require.True(t, ok)
	assert.Equal(t, "A1:C4", staff.Dimension)
	assert.Len(t, staff.Merges, 3)
	assert.Empty(t, staff.SkippedMerges)

	g := staff.Grid
	assert.Equal(t, 2, g[0][0].ColSpan)
	assert.True(t, g[0][1].IsAbsent())
	assert.Equal(t, "Person", g[0][1].Resolved.String())
	assert.Equal(t, 2, g[0][2].RowSpan)
	assert.Equal(t, "North", g[3][2].Resolved.String())
	assert.Equal(t, models.Number, g[3][1].Value.Kind)
	assert.Equal(t, "0", g[3][1].Value.String())

	notes, ok := wb.Sheet("Notes")
	require.True(t, ok)
	assert.Equal(t, "A1:B2", notes.Dimension)
}

func TestLoadThenPivot(t *testing.T) {
	wb, err := Load(context.Background(), writeBuffer(t, newWorkbook(t)), Options{Sheets: []string{"Staff"}})
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 1)

	view, err := table.NewTableView(wb.Sheets[0], 2, table.HeaderComposite)
	require.NoError(t, err)
	assert.Equal(t, []string{"Person - Name", "Age", "Region"}, view.Headers)

	records := table.Pivot(view)
	require.Len(t, records, 2)

	linus := records[1]
	require.Len(t, linus.DataCells, 3)
	assert.Equal(t, "Linus", linus.DataCells[0].Value.String())
	assert.Equal(t, "0", linus.DataCells[1].Value.String())
	assert.Equal(t, "North", linus.DataCells[2].Value.String())

	person := linus.HeaderCells[0][0]
	assert.Equal(t, 2, person.RowSpan)
	assert.Equal(t, 1, person.ColSpan)
	region := linus.HeaderCells[2][0]
	assert.Equal(t, 1, region.RowSpan)
	assert.Equal(t, 2, region.ColSpan)
}

func TestLoadRange(t *testing.T) {
	wb, err := Load(context.Background(), writeBuffer(t, newWorkbook(t)), Options{
		Sheets: []string{"Staff"},
		Range:  "A2:B4",
	})
	require.NoError(t, err)

	s := wb.Sheets[0]
	assert.Equal(t, "A2:B4", s.Dimension)
	require.Equal(t, 3, s.Grid.Rows())
	assert.Equal(t, "Name", s.Grid[0][0].Value.String())
	assert.Empty(t, s.Merges)
}

func TestLoadRangeKeepsClippedMergeLabel(t *testing.T) {
	wb, err := Load(context.Background(), writeBuffer(t, newWorkbook(t)), Options{
		Sheets: []string{"Staff"},
		Range:  "B2:C4",
	})
	require.NoError(t, err)

	g := wb.Sheets[0].Grid
	assert.Equal(t, "Region", g[0][1].Value.String())
	assert.Equal(t, "North", g[1][1].Value.String())
	assert.Equal(t, 2, g[1][1].RowSpan)
	assert.Equal(t, "North", g[2][1].Resolved.String())
}

func TestLoadKeepsTextCodes(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	require.NoError(t, f.SetCellStr("Sheet1", "A1", "Code"))
	require.NoError(t, f.SetCellStr("Sheet1", "A2", "007"))

	wb, err := Load(context.Background(), writeBuffer(t, f), Options{})
	require.NoError(t, err)

	r, err := View(wb, "", ViewOptions{HeaderRows: 1, Mode: "table"})
	require.NoError(t, err)
	assert.Equal(t, models.Text, r.Rows[0][0].Value.Kind)

	data, err := json.Marshal(r.Rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[[{"value":"007","resolved":"007","rowSpan":1,"colSpan":1}]]`, string(data))
}

func TestLoadPrintArea(t *testing.T) {
	f := newWorkbook(t)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Staff!$A$2:$B$3",
		Scope:    "Staff",
	}))

	wb, err := Load(context.Background(), writeBuffer(t, f), Options{UsePrintArea: true})
	require.NoError(t, err)

	staff, _ := wb.Sheet("Staff")
	assert.Equal(t, "A2:B3", staff.Dimension)
	notes, _ := wb.Sheet("Notes")
	assert.Equal(t, "A1:B2", notes.Dimension)
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, strings.NewReader("not a workbook"), Options{})
	assert.True(t, stderrors.Is(err, ErrParse), "%v", err)

	_, err = Load(ctx, writeBuffer(t, newWorkbook(t)), Options{Sheets: []string{"Missing"}})
	assert.True(t, stderrors.Is(err, ErrParse), "%v", err)

	_, err = Load(ctx, writeBuffer(t, newWorkbook(t)), Options{Range: "nope"})
	assert.True(t, stderrors.Is(err, ErrConfig), "%v", err)

	_, err = LoadFile(ctx, filepath.Join(t.TempDir(), "missing.xlsx"), Options{})
	assert.True(t, stderrors.Is(err, ErrParse), "%v", err)
	assert.True(t, stderrors.Is(err, ErrFileNotFound), "%v", err)
}

func TestLoadSizeLimits(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, writeBuffer(t, newWorkbook(t)), Options{Limits: Limits{MaxFileSize: 16}})
	assert.True(t, stderrors.Is(err, ErrSizeLimit), "%v", err)

	_, err = Load(ctx, writeBuffer(t, newWorkbook(t)), Options{Limits: Limits{MaxRows: 3}})
	assert.True(t, stderrors.Is(err, ErrSizeLimit), "%v", err)
	var sheetErr *SheetError
	require.True(t, stderrors.As(err, &sheetErr))
	assert.Equal(t, "Staff", sheetErr.SheetName)

	_, err = Load(ctx, writeBuffer(t, newWorkbook(t)), Options{Limits: Limits{MaxCols: 2}})
	assert.True(t, stderrors.Is(err, ErrSizeLimit), "%v", err)

	_, err = Load(ctx, writeBuffer(t, newWorkbook(t)), Options{Limits: Limits{MaxFileSize: -1, MaxRows: -1, MaxCols: -1}})
	assert.NoError(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, newWorkbook(t).SaveAs(path))

	wb, err := LoadFile(context.Background(), path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "book.xlsx", wb.BookName)
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, writeBuffer(t, newWorkbook(t)), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
