// Package export writes layouts to PDF, label sheets, Excel, DXF and PNG.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/GridPlace/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the layout on a single A4 landscape page: the grid
// with its cell lines, every item in its display color, and a legend.
func ExportPDF(path string, layout model.Layout) error {
	if layout.Grid.Width <= 0 || layout.Grid.Height <= 0 {
		return fmt.Errorf("invalid grid %s", layout.Grid)
	}
	if len(layout.Items) == 0 {
		return fmt.Errorf("no items to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()
	renderLayoutPage(pdf, layout)

	return pdf.OutputFileAndClose(path)
}

// gridScale returns the size of one cell in mm so the grid fits the drawing area.
func gridScale(grid model.GridSize) float64 {
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	return math.Min(drawWidth/float64(grid.Width), drawHeight/float64(grid.Height))
}

func renderLayoutPage(pdf *fpdf.Fpdf, layout model.Layout) {
	grid := layout.Grid

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s (%d x %d cells)", layout.Name, grid.Width, grid.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Used cells: %d | Total cells: %d | Fill: %.1f%%",
		len(layout.Items), layout.UsedCells(), grid.Cells(), layout.Fill())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	scale := gridScale(grid)
	canvasW := float64(grid.Width) * scale
	canvasH := float64(grid.Height) * scale
	drawWidth := pageWidth - marginLeft - marginRight
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Grid background and cell lines
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	pdf.SetDrawColor(210, 210, 210)
	pdf.SetLineWidth(0.1)
	for c := 1; c < grid.Width; c++ {
		x := offsetX + float64(c)*scale
		pdf.Line(x, offsetY, x, offsetY+canvasH)
	}
	for r := 1; r < grid.Height; r++ {
		y := offsetY + float64(r)*scale
		pdf.Line(offsetX, y, offsetX+canvasW, y)
	}

	for i, it := range layout.Items {
		col := model.ItemColor(i)
		iw := float64(it.Width) * scale
		ih := float64(it.Height) * scale
		ix := offsetX + float64(it.X)*scale
		iy := offsetY + float64(it.Y)*scale

		pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(ix, iy, iw, ih, "FD")

		// Label (only if rectangle is large enough)
		if iw > 12 && ih > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(iw, ih))
			pdf.SetTextColor(0, 0, 0)

			label := it.Label
			pos := it.PositionLabel()
			labelW := pdf.GetStringWidth(label)
			posW := pdf.GetStringWidth(pos)

			if labelW < iw-2 {
				pdf.SetXY(ix+(iw-labelW)/2, iy+ih/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if ih > 14 && posW < iw-2 {
				pdf.SetXY(ix+(iw-posW)/2, iy+ih/2)
				pdf.CellFormat(posW, 4, pos, "", 0, "C", false, 0, "")
			}
		}
	}

	drawItemsLegend(pdf, layout, offsetY+canvasH+5)

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by GridPlace", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders a compact legend of placed items below the grid.
func drawItemsLegend(pdf *fpdf.Fpdf, layout model.Layout, startY float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, it := range layout.Items {
		col := model.ItemColor(i)
		label := fmt.Sprintf("%s %dx%d @ %s", it.Label, it.Width, it.Height, it.PositionLabel())
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
