// Package engine places rectangular items on a grid using a first-fit,
// row-major scan that grows the grid height when it runs out of rows.
package engine

import (
	"fmt"
	"strings"

	"github.com/piwi3910/GridPlace/internal/model"
)

// OccupancyMatrix marks which grid cells are covered by placed items.
// Rows are indexed first: cells[row][col].
type OccupancyMatrix struct {
	width int
	cells [][]bool
}

// BuildOccupancy marks every cell covered by items on a grid of the given size.
// Items must lie inside the grid and must not overlap each other.
func BuildOccupancy(grid model.GridSize, items []model.Item) (*OccupancyMatrix, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidGrid, grid)
	}

	m := newOccupancyMatrix(grid.Width, grid.Height)
	for i, it := range items {
		if err := m.mark(it); err != nil {
			return nil, fmt.Errorf("item %d (%s at %s): %w", i, sizeString(it.Size()), it.PositionLabel(), err)
		}
	}
	return m, nil
}

func newOccupancyMatrix(width, height int) *OccupancyMatrix {
	m := &OccupancyMatrix{width: width}
	m.cells = make([][]bool, height)
	for r := range m.cells {
		m.cells[r] = make([]bool, width)
	}
	return m
}

// mark sets every cell of the item, failing on cells already set.
func (m *OccupancyMatrix) mark(it model.Item) error {
	if it.Width <= 0 || it.Height <= 0 || it.X < 0 || it.Y < 0 {
		return ErrInvalidItem
	}
	if it.X > m.width-it.Width || it.Y > len(m.cells)-it.Height {
		return ErrItemOutOfGrid
	}
	for r := it.Y; r < it.Y+it.Height; r++ {
		for c := it.X; c < it.X+it.Width; c++ {
			if m.cells[r][c] {
				return fmt.Errorf("%w at cell %d, %d", ErrItemsOverlap, c, r)
			}
			m.cells[r][c] = true
		}
	}
	return nil
}

// Width returns the number of columns.
func (m *OccupancyMatrix) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *OccupancyMatrix) Height() int {
	return len(m.cells)
}

// Occupied reports whether the cell is covered. Cells outside the matrix
// count as occupied.
func (m *OccupancyMatrix) Occupied(row, col int) bool {
	if row < 0 || row >= len(m.cells) || col < 0 || col >= m.width {
		return true
	}
	return m.cells[row][col]
}

// Free reports whether an item of the given size fits with its top-left
// corner at (col, row) without touching an occupied cell.
func (m *OccupancyMatrix) Free(row, col int, size model.Size) bool {
	for r := row; r < row+size.Height; r++ {
		for c := col; c < col+size.Width; c++ {
			if m.Occupied(r, c) {
				return false
			}
		}
	}
	return true
}

// Grow appends empty rows until the matrix has the given height.
// Existing rows are kept, which gives the same result as rebuilding the
// matrix for the taller grid. A smaller height is ignored.
func (m *OccupancyMatrix) Grow(height int) {
	for len(m.cells) < height {
		m.cells = append(m.cells, make([]bool, m.width))
	}
}

// OccupiedCells counts covered cells.
func (m *OccupancyMatrix) OccupiedCells() int {
	n := 0
	for _, row := range m.cells {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}

// String renders the matrix one row per line, '#' for occupied cells and
// '.' for free ones.
func (m *OccupancyMatrix) String() string {
	var sb strings.Builder
	for r, row := range m.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, set := range row {
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func sizeString(s model.Size) string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
