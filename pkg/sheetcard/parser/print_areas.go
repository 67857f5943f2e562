package parser

import (
	"fmt"
	"strings"

	"github.com/sheetcard/sheetcard-go/pkg/sheetcard/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns the _xlnm.Print_Area ranges of every sheet that
// defines one, keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// ParseRange parses an A1 range such as "B2:F20" or "$A$1:$D$10".
// A single cell reference yields a one-cell area.
func ParseRange(ref string) (models.Area, error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	if !strings.Contains(ref, ":") {
		ref = ref + ":" + ref
	}
	area := parseRangeToArea(ref)
	if area == nil {
		return models.Area{}, fmt.Errorf("invalid range %q", ref)
	}
	return *area, nil
}

// CropValues returns the part of values inside area, padded to the area's
// width where rows are short.
func CropValues(values [][]models.Value, area models.Area) [][]models.Value {
	width := area.C2 - area.C1 + 1
	var out [][]models.Value
	for r := area.R1 - 1; r <= area.R2-1 && r < len(values); r++ {
		row := values[r]
		var part []models.Value
		if area.C1-1 < len(row) {
			part = row[area.C1-1 : min(area.C2, len(row))]
		}
		out = append(out, padRow(part, width, models.BlankValue()))
	}
	return out
}

// Crop restricts values and merges to area. A merge whose anchor lies
// outside area is clipped and the anchor's value is moved to the clipped
// merge's top-left cell, so the merged label survives the crop.
func Crop(values [][]models.Value, merges []models.Merge, area models.Area) ([][]models.Value, []models.Merge) {
	cropped := CropValues(values, area)
	bounds := area.Merge()
	for _, m := range merges {
		if !m.Overlaps(bounds) || (m.StartRow >= bounds.StartRow && m.StartCol >= bounds.StartCol) {
			continue
		}
		r := max(m.StartRow, bounds.StartRow) - bounds.StartRow
		c := max(m.StartCol, bounds.StartCol) - bounds.StartCol
		if r >= len(cropped) || m.StartRow >= len(values) || m.StartCol >= len(values[m.StartRow]) {
			continue
		}
		cropped[r][c] = values[m.StartRow][m.StartCol]
	}
	return cropped, CropMerges(merges, area)
}

// CropMerges intersects merges with area and shifts them to the area's origin.
// Merges outside the area are dropped.
func CropMerges(merges []models.Merge, area models.Area) []models.Merge {
	bounds := area.Merge()
	var out []models.Merge
	for _, m := range merges {
		if !m.Overlaps(bounds) {
			continue
		}
		out = append(out, models.Merge{
			StartRow: max(m.StartRow, bounds.StartRow) - bounds.StartRow,
			StartCol: max(m.StartCol, bounds.StartCol) - bounds.StartCol,
			EndRow:   min(m.EndRow, bounds.EndRow) - bounds.StartRow,
			EndCol:   min(m.EndCol, bounds.EndCol) - bounds.StartCol,
		})
	}
	return out
}

// parsePrintAreaReference splits a defined-name reference such as
// 'My Sheet'!$A$1:$D$10,'My Sheet'!$F$1:$G$4 into its sheet and areas.
func parsePrintAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10 to an Area.
func parseRangeToArea(rangeStr string) *models.Area {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.Area{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
