package model

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// GridSize is the extent of the grid in abstract cell units.
type GridSize struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Cells returns the number of cells covered by the grid.
func (g GridSize) Cells() int {
	return g.Width * g.Height
}

func (g GridSize) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// ParseGridSize parses the "WxH" form produced by GridSize.String.
// It does not apply grid limits.
func ParseGridSize(s string) (GridSize, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return GridSize{}, fmt.Errorf("grid size %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return GridSize{}, fmt.Errorf("grid size %q: invalid width: %w", s, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return GridSize{}, fmt.Errorf("grid size %q: invalid height: %w", s, err)
	}
	return GridSize{Width: width, Height: height}, nil
}

// Size holds the dimensions of an item that has not been placed yet.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Position is the top-left cell of a placed item.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Item is a rectangle occupying cells [X, X+Width) x [Y, Y+Height).
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	X      int    `json:"x" yaml:"x"`
	Y      int    `json:"y" yaml:"y"`
}

// NewItem creates an item of the given size at the given position.
func NewItem(label string, size Size, pos Position) Item {
	return Item{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  size.Width,
		Height: size.Height,
		X:      pos.X,
		Y:      pos.Y,
	}
}

// Size returns the item's dimensions.
func (it Item) Size() Size {
	return Size{Width: it.Width, Height: it.Height}
}

// Position returns the item's origin.
func (it Item) Position() Position {
	return Position{X: it.X, Y: it.Y}
}

// Bounds returns the covered cells as an image.Rectangle.
func (it Item) Bounds() image.Rectangle {
	return image.Rect(it.X, it.Y, it.X+it.Width, it.Y+it.Height)
}

// Overlaps reports whether two items share at least one cell.
func (it Item) Overlaps(other Item) bool {
	return it.Bounds().Overlaps(other.Bounds())
}

// Bottom returns the first row below the item.
func (it Item) Bottom() int {
	return it.Y + it.Height
}

// Area returns the number of cells the item covers.
func (it Item) Area() int {
	return it.Width * it.Height
}

// PositionLabel is the "x, y" accessibility label shown for a placed item.
func (it Item) PositionLabel() string {
	return fmt.Sprintf("%d, %d", it.X, it.Y)
}

// Layout is a grid together with the items committed to it.
type Layout struct {
	Name  string   `json:"name" yaml:"name"`
	Grid  GridSize `json:"grid" yaml:"grid"`
	Items []Item   `json:"items" yaml:"items"`
}

// NewLayout returns an empty layout using the default grid.
func NewLayout() Layout {
	return Layout{
		Name:  "Untitled",
		Grid:  DefaultGridSize(),
		Items: []Item{},
	}
}

// UsedCells returns the number of cells covered by items.
func (l Layout) UsedCells() int {
	total := 0
	for _, it := range l.Items {
		total += it.Area()
	}
	return total
}

// Fill returns the occupied share of the grid in percent.
func (l Layout) Fill() float64 {
	cells := l.Grid.Cells()
	if cells == 0 {
		return 0
	}
	return float64(l.UsedCells()) / float64(cells) * 100.0
}

// DefaultGridSize is the grid a new layout starts with.
func DefaultGridSize() GridSize {
	return GridSize{Width: 12, Height: 6}
}
