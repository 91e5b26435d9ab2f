package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/GridPlace/internal/model"
)

// DXF layer names.
const (
	dxfLayerGrid   = "GRID"
	dxfLayerItems  = "ITEMS"
	dxfLayerLabels = "LABELS"
)

// DefaultDXFCellSize is the edge length of one grid cell in drawing units.
const DefaultDXFCellSize = 10.0

// ExportDXF writes the grid boundary and every item outline as LINE entities.
// DXF's Y axis points up, so row 0 is drawn at the top of the grid.
func ExportDXF(path string, layout model.Layout, cellSize float64) error {
	grid := layout.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		return fmt.Errorf("invalid grid %s", grid)
	}
	if cellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %g", cellSize)
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(dxfLayerGrid, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", dxfLayerGrid, err)
	}
	if err := outlineRect(d, 0, 0, grid.Width, grid.Height, grid.Height, cellSize); err != nil {
		return err
	}

	if _, err := d.AddLayer(dxfLayerItems, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", dxfLayerItems, err)
	}
	for _, it := range layout.Items {
		if err := outlineRect(d, it.X, it.Y, it.Width, it.Height, grid.Height, cellSize); err != nil {
			return fmt.Errorf("item %q: %w", it.Label, err)
		}
	}

	if _, err := d.AddLayer(dxfLayerLabels, color.Blue, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", dxfLayerLabels, err)
	}
	textHeight := cellSize * 0.3
	for _, it := range layout.Items {
		if it.Label == "" {
			continue
		}
		x := (float64(it.X) + 0.1) * cellSize
		y := float64(grid.Height-it.Y)*cellSize - cellSize*0.5
		if _, err := d.Text(it.Label, x, y, 0, textHeight); err != nil {
			return fmt.Errorf("item %q label: %w", it.Label, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF file: %w", err)
	}
	return nil
}

// outlineRect draws the four edges of a cell rectangle on the current layer.
func outlineRect(d *drawing.Drawing, col, row, w, h, gridHeight int, cellSize float64) error {
	x0 := float64(col) * cellSize
	x1 := float64(col+w) * cellSize
	yTop := float64(gridHeight-row) * cellSize
	yBottom := float64(gridHeight-row-h) * cellSize

	edges := [4][4]float64{
		{x0, yTop, x1, yTop},
		{x1, yTop, x1, yBottom},
		{x1, yBottom, x0, yBottom},
		{x0, yBottom, x0, yTop},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return fmt.Errorf("failed to draw line: %w", err)
		}
	}
	return nil
}
