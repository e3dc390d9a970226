package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ofwlens/ofwlens/internal/joint"
	"github.com/ofwlens/ofwlens/internal/reshape"
)

// JointWorkbook writes the joint percent matrix to an .xlsx workbook.
// The estimation note lands in the row under the title so the caveat
// travels with the numbers.
func JointWorkbook(path string, m *joint.Matrix, title, note string) error {
	if m == nil {
		return fmt.Errorf("workbook: empty matrix")
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", title)
	f.SetCellValue(sheet, "A2", note)

	const headerRow = 4
	for j, col := range m.Cols {
		cell, _ := excelize.CoordinatesToCellName(j+2, headerRow)
		f.SetCellValue(sheet, cell, col)
	}
	for i, row := range m.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		f.SetCellValue(sheet, cell, row)
		for j := range m.Cols {
			cell, _ := excelize.CoordinatesToCellName(j+2, headerRow+1+i)
			f.SetCellValue(sheet, cell, m.Percent[i][j])
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// CategoriesWorkbook writes a melted category set to an .xlsx workbook,
// one row per category in the order given.
func CategoriesWorkbook(path string, set []reshape.CategoryCount, title string) error {
	if len(set) == 0 {
		return fmt.Errorf("workbook: empty category set")
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	f.SetCellValue(sheet, "A1", title)
	headers := []string{"Category", "Year", "Count"}
	for j, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(j+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	for i, c := range set {
		row := 4 + i
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sheet, cell, c.Category)
		cell, _ = excelize.CoordinatesToCellName(2, row)
		f.SetCellValue(sheet, cell, c.Year)
		cell, _ = excelize.CoordinatesToCellName(3, row)
		f.SetCellValue(sheet, cell, c.Count)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
