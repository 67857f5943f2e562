package table

import (
	"testing"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPivotSimple(t *testing.T) {
	s := sheet(t, nil, []string{"A", "B"}, []string{"1", "2"})
	view, err := NewTableView(s, 1, HeaderSingle)
	require.NoError(t, err)

	records := Pivot(view)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, 1, rec.Row)
	require.Len(t, rec.HeaderCells, 2)
	assert.Equal(t, []string{"A"}, texts(rec.HeaderCells[0]))
	assert.Equal(t, []string{"B"}, texts(rec.HeaderCells[1]))
	assert.Equal(t, []string{"1", "2"}, texts(rec.DataCells))
	for _, c := range rec.DataCells {
		assert.Equal(t, 1, c.RowSpan)
		assert.Equal(t, 1, c.ColSpan)
	}
}

func TestPivotInvertsMergedHeaderSpan(t *testing.T) {
	s := sheet(t, []models.Merge{{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}},
		[]string{"Group", ""},
		[]string{"a", "b"},
		[]string{"x", "y"},
	)
	view, err := NewTableView(s, 2, HeaderSingle)
	require.NoError(t, err)

	records := Pivot(view)

	require.Len(t, records, 1)
	rec := records[0]
	require.Len(t, rec.HeaderCells, 2)

	group := rec.HeaderCells[0][0]
	assert.Equal(t, "Group", group.Value.String())
	assert.Equal(t, 2, group.RowSpan)
	assert.Equal(t, 1, group.ColSpan)
	assert.Equal(t, "a", rec.HeaderCells[0][1].Value.String())

	placeholder := rec.HeaderCells[1][0]
	assert.True(t, placeholder.IsAbsent())
	assert.Equal(t, 1, placeholder.RowSpan)
	assert.Equal(t, 1, placeholder.ColSpan)
	assert.Equal(t, "b", rec.HeaderCells[1][1].Value.String())

	assert.Equal(t, []string{"x", "y"}, texts(rec.DataCells))
}

func TestPivotSpanInversionRoundTrip(t *testing.T) {
	s := sheet(t, []models.Merge{{StartRow: 0, StartCol: 1, EndRow: 1, EndCol: 3}},
		[]string{"Key", "Block", "", ""},
		[]string{"", "", "", ""},
		[]string{"k", "1", "2", "3"},
	)
	view, err := NewTableView(s, 2, HeaderSingle)
	require.NoError(t, err)

	rec := Pivot(view)[0]

	anchor := s.Grid[0][1]
	require.Equal(t, 2, anchor.RowSpan)
	require.Equal(t, 3, anchor.ColSpan)
	pivoted := rec.HeaderCells[1][0]
	assert.Equal(t, anchor.ColSpan, pivoted.RowSpan)
	assert.Equal(t, anchor.RowSpan, pivoted.ColSpan)
}

func TestPivotResolvesMergedDataCells(t *testing.T) {
	s := sheet(t, []models.Merge{{StartRow: 1, StartCol: 0, EndRow: 2, EndCol: 0}},
		[]string{"Region", "City"},
		[]string{"North", "Oslo"},
		[]string{"", "Bergen"},
	)
	view, err := NewTableView(s, 1, HeaderSingle)
	require.NoError(t, err)

	records := Pivot(view)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"North", "Oslo"}, texts(records[0].DataCells))
	assert.Equal(t, []string{"North", "Bergen"}, texts(records[1].DataCells))
	assert.Equal(t, 2, records[1].Row)
}

func TestPivotOmitsBlankColumns(t *testing.T) {
	s := sheet(t, nil,
		[]string{"A", "", "C", ""},
		[]string{"1", "", "", "4"},
	)
	view, err := NewTableView(s, 1, HeaderSingle)
	require.NoError(t, err)

	rec := Pivot(view)[0]

	// Column B has neither header nor value, column D has a value but no header.
	require.Len(t, rec.HeaderCells, 2)
	assert.Equal(t, "A", rec.HeaderCells[0][0].Value.String())
	assert.Equal(t, "C", rec.HeaderCells[1][0].Value.String())
	assert.Equal(t, []string{"1", ""}, texts(rec.DataCells))
}

func TestPivotKeepsZero(t *testing.T) {
	s := sheet(t, nil, []string{"Count"}, []string{"0"})
	view, err := NewTableView(s, 1, HeaderSingle)
	require.NoError(t, err)

	rec := Pivot(view)[0]

	require.Len(t, rec.DataCells, 1)
	assert.Equal(t, models.Number, rec.DataCells[0].Value.Kind)
	assert.Equal(t, "0", rec.DataCells[0].Value.String())
}

func TestPivotBounds(t *testing.T) {
	s := sheet(t, []models.Merge{
		{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 2},
		{StartRow: 2, StartCol: 1, EndRow: 3, EndCol: 2},
	},
		[]string{"Top", "", "", "Solo"},
		[]string{"a", "b", "", "d"},
		[]string{"1", "wide", "", ""},
		[]string{"2", "", "", "x"},
	)
	view, err := NewTableView(s, 2, HeaderSingle)
	require.NoError(t, err)

	records := Pivot(view)

	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, len(rec.HeaderCells), len(rec.DataCells))
		assert.LessOrEqual(t, len(rec.DataCells), view.Rows.Cols())
		for _, strip := range rec.HeaderCells {
			assert.Len(t, strip, view.HeaderRowCount)
		}
	}
	assert.Equal(t, []string{"1", "wide", "wide", ""}, texts(records[0].DataCells))
	assert.Equal(t, []string{"2", "wide", "wide", "x"}, texts(records[1].DataCells))
}

func TestPivotPadsShortRows(t *testing.T) {
	view := models.TableView{
		SheetName:      "ragged",
		HeaderRowCount: 1,
		Rows: models.Grid{
			{models.NewCell(models.TextValue("A")), models.NewCell(models.TextValue("B"))},
			{models.NewCell(models.TextValue("1"))},
		},
	}

	rec := Pivot(view)[0]

	assert.Equal(t, []string{"1", ""}, texts(rec.DataCells))
}

func TestPivotIsPure(t *testing.T) {
	s := sheet(t, []models.Merge{{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1}},
		[]string{"Group", ""},
		[]string{"a", "b"},
		[]string{"x", "y"},
	)
	view, err := NewTableView(s, 2, HeaderSingle)
	require.NoError(t, err)

	first := Pivot(view)
	second := Pivot(view)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, s.Grid[0][0].ColSpan)
	assert.Equal(t, 1, s.Grid[0][0].RowSpan)
}

func TestSelect(t *testing.T) {
	s := sheet(t, nil, []string{"A", "B"}, []string{"1", "2"}, []string{"3", "4"})
	view, err := NewTableView(s, 1, HeaderSingle)
	require.NoError(t, err)

	flat, err := Select(models.ViewTable, view)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, flat.Headers)
	assert.Len(t, flat.HeaderRows, 1)
	assert.Len(t, flat.Rows, 2)
	assert.Nil(t, flat.Records)

	cards, err := Select(models.ViewPivoted, view)
	require.NoError(t, err)
	assert.Len(t, cards.Records, 2)
	assert.Nil(t, cards.Rows)

	_, err = Select(models.ViewMode("grid"), view)
	assert.Error(t, err)
}
