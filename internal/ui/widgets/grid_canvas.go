package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/GridPlace/internal/model"
)

var (
	gridBackground = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	gridLineColor  = color.NRGBA{R: 210, G: 210, B: 210, A: 255}
	gridBorder     = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	itemBorder     = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// GridCanvas draws a layout: the cell grid plus every item in its palette color.
type GridCanvas struct {
	widget.BaseWidget
	layout   model.Layout
	cellSize float32

	// OnItemTapped is called with the item under a tap, if any.
	OnItemTapped func(item model.Item)
}

func NewGridCanvas(layout model.Layout, cellSize float32) *GridCanvas {
	gc := &GridCanvas{
		layout:   layout,
		cellSize: cellSize,
	}
	gc.ExtendBaseWidget(gc)
	return gc
}

// SetLayout replaces the displayed layout and redraws.
func (gc *GridCanvas) SetLayout(layout model.Layout) {
	gc.layout = layout
	gc.Refresh()
}

// CellAt converts a widget-relative position to a grid cell.
func (gc *GridCanvas) CellAt(pos fyne.Position) (model.Position, bool) {
	if pos.X < 0 || pos.Y < 0 || gc.cellSize <= 0 {
		return model.Position{}, false
	}
	col := int(pos.X / gc.cellSize)
	row := int(pos.Y / gc.cellSize)
	if col >= gc.layout.Grid.Width || row >= gc.layout.Grid.Height {
		return model.Position{}, false
	}
	return model.Position{X: col, Y: row}, true
}

// ItemAt returns the item covering the given cell.
func (gc *GridCanvas) ItemAt(cell model.Position) (model.Item, bool) {
	probe := model.Item{Width: 1, Height: 1, X: cell.X, Y: cell.Y}
	for _, it := range gc.layout.Items {
		if it.Overlaps(probe) {
			return it, true
		}
	}
	return model.Item{}, false
}

// Tapped implements fyne.Tappable.
func (gc *GridCanvas) Tapped(ev *fyne.PointEvent) {
	if gc.OnItemTapped == nil {
		return
	}
	cell, ok := gc.CellAt(ev.Position)
	if !ok {
		return
	}
	if it, ok := gc.ItemAt(cell); ok {
		gc.OnItemTapped(it)
	}
}

func (gc *GridCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newGridCanvasRenderer(gc)
}

type gridCanvasRenderer struct {
	gc      *GridCanvas
	objects []fyne.CanvasObject
}

func newGridCanvasRenderer(gc *GridCanvas) *gridCanvasRenderer {
	r := &gridCanvasRenderer{gc: gc}
	r.rebuild()
	return r
}

func (r *gridCanvasRenderer) rebuild() {
	r.objects = nil

	grid := r.gc.layout.Grid
	cell := r.gc.cellSize
	canvasW := float32(grid.Width) * cell
	canvasH := float32(grid.Height) * cell

	bg := canvas.NewRectangle(gridBackground)
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, bg)

	for c := 1; c < grid.Width; c++ {
		x := float32(c) * cell
		line := canvas.NewLine(gridLineColor)
		line.Position1 = fyne.NewPos(x, 0)
		line.Position2 = fyne.NewPos(x, canvasH)
		r.objects = append(r.objects, line)
	}
	for row := 1; row < grid.Height; row++ {
		y := float32(row) * cell
		line := canvas.NewLine(gridLineColor)
		line.Position1 = fyne.NewPos(0, y)
		line.Position2 = fyne.NewPos(canvasW, y)
		r.objects = append(r.objects, line)
	}

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = gridBorder
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	r.objects = append(r.objects, border)

	for i, it := range r.gc.layout.Items {
		iw := float32(it.Width) * cell
		ih := float32(it.Height) * cell
		ix := float32(it.X) * cell
		iy := float32(it.Y) * cell

		rect := canvas.NewRectangle(model.ItemColor(i))
		rect.StrokeColor = itemBorder
		rect.StrokeWidth = 1
		rect.Resize(fyne.NewSize(iw, ih))
		rect.Move(fyne.NewPos(ix, iy))
		r.objects = append(r.objects, rect)

		// Label (only if big enough)
		if iw > 30 && ih > 16 {
			label := canvas.NewText(it.Label, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(ix+3, iy+2))
			r.objects = append(r.objects, label)
		}
		if iw > 30 && ih > 30 {
			pos := canvas.NewText(it.PositionLabel(), color.Black)
			pos.TextSize = 9
			pos.Move(fyne.NewPos(ix+3, iy+16))
			r.objects = append(r.objects, pos)
		}
	}
}

func (r *gridCanvasRenderer) Layout(size fyne.Size)        {}
func (r *gridCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *gridCanvasRenderer) Destroy()                     {}
func (r *gridCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *gridCanvasRenderer) MinSize() fyne.Size {
	grid := r.gc.layout.Grid
	return fyne.NewSize(float32(grid.Width)*r.gc.cellSize, float32(grid.Height)*r.gc.cellSize)
}
