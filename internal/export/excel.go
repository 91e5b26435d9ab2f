package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GridPlace/internal/model"
)

// Sheet names used by ExportExcel.
const (
	ExcelItemsSheet = "Items"
	ExcelGridSheet  = "Grid"
)

var excelItemHeaders = []string{"Label", "Width", "Height", "X", "Y", "ID"}

// ExportExcel writes the layout to an .xlsx workbook. The first sheet lists
// the items in a form the importer reads back; the second paints the grid
// with one colored cell per occupied grid cell.
func ExportExcel(path string, layout model.Layout) error {
	grid := layout.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		return fmt.Errorf("invalid grid %s", grid)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ExcelItemsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeItemsSheet(f, layout); err != nil {
		return err
	}

	if _, err := f.NewSheet(ExcelGridSheet); err != nil {
		return fmt.Errorf("failed to create grid sheet: %w", err)
	}
	if err := writeGridSheet(f, layout); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func writeItemsSheet(f *excelize.File, layout model.Layout) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range excelItemHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(ExcelItemsSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(excelItemHeaders), 1)
	if err := f.SetCellStyle(ExcelItemsSheet, "A1", lastHeader, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, it := range layout.Items {
		values := []interface{}{it.Label, it.Width, it.Height, it.X, it.Y, it.ID}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(ExcelItemsSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write item %q: %w", it.Label, err)
			}
		}
	}

	return f.SetColWidth(ExcelItemsSheet, "A", "A", 24)
}

// writeGridSheet fills one spreadsheet cell per grid cell with the item number
// and color of the item covering it.
func writeGridSheet(f *excelize.File, layout model.Layout) error {
	grid := layout.Grid
	lastCol, _ := excelize.ColumnNumberToName(grid.Width)
	if err := f.SetColWidth(ExcelGridSheet, "A", lastCol, 4); err != nil {
		return fmt.Errorf("failed to size grid columns: %w", err)
	}

	for i, it := range layout.Items {
		c := model.ItemColor(i)
		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("failed to create item style: %w", err)
		}

		topLeft, _ := excelize.CoordinatesToCellName(it.X+1, it.Y+1)
		bottomRight, _ := excelize.CoordinatesToCellName(it.X+it.Width, it.Y+it.Height)
		for row := it.Y; row < it.Y+it.Height; row++ {
			for col := it.X; col < it.X+it.Width; col++ {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+1)
				if err := f.SetCellValue(ExcelGridSheet, cell, i+1); err != nil {
					return fmt.Errorf("failed to write grid cell: %w", err)
				}
			}
		}
		if err := f.SetCellStyle(ExcelGridSheet, topLeft, bottomRight, style); err != nil {
			return fmt.Errorf("failed to style item %q: %w", it.Label, err)
		}
	}
	return nil
}
