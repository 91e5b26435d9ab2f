package engine

import (
	"github.com/piwi3910/GridPlace/internal/model"
)

// Placement is the outcome of a successful search: where the candidate
// goes and the grid it was found on. Grid.Height is larger than the
// height passed in when the search had to grow the grid.
type Placement struct {
	Position model.Position
	Grid     model.GridSize
}

// Item builds the placed item for the candidate.
func (p Placement) Item(label string, size model.Size) model.Item {
	return model.NewItem(label, size, p.Position)
}

// FindPosition returns the first row-major position at which an item of
// the candidate size fits between the already placed items.
//
// The candidate must be at least one cell in each direction and must not
// be wider or taller than the grid; width is checked first. When the scan
// reaches the grid's last cell, or the candidate would hang over the
// bottom edge, the grid height is doubled and the scan continues, so an
// accepted candidate always gets a position. The grid passed in is not
// modified; the grown size is returned in the Placement.
func FindPosition(grid model.GridSize, items []model.Item, candidate model.Size) (Placement, error) {
	if candidate.Width <= 0 || candidate.Width > grid.Width {
		return Placement{}, ErrWidthOutOfBounds
	}
	if candidate.Height <= 0 || candidate.Height > grid.Height {
		return Placement{}, ErrHeightOutOfBounds
	}

	m, err := BuildOccupancy(grid, items)
	if err != nil {
		return Placement{}, err
	}

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			// Last cell of the scan: grow before looking at it.
			if row == grid.Height-1 && col == grid.Width-1 {
				grid.Height *= 2
				m.Grow(grid.Height)
			}
			if m.Occupied(row, col) {
				continue
			}
			if col+candidate.Width > grid.Width {
				continue
			}
			if row+candidate.Height > grid.Height {
				grid.Height *= 2
				m.Grow(grid.Height)
			}
			if m.Free(row, col, candidate) {
				return Placement{
					Position: model.Position{X: col, Y: row},
					Grid:     grid,
				}, nil
			}
		}
	}

	// Unreachable: growth at the last cell keeps the scan going.
	return Placement{}, ErrHeightOutOfBounds
}
