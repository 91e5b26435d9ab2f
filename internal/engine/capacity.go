package engine

import (
	"github.com/piwi3910/GridPlace/internal/model"
)

// Capacity estimates how many more items of one size a layout can take.
type Capacity struct {
	Size model.Size
	// WithoutGrowth is how many fit inside the current grid rows.
	WithoutGrowth int
	// FreeCells is the number of uncovered cells.
	FreeCells int
	// Fraction of FreeCells the extra items would cover, 0 to 100.
	UsePercent float64
}

// EstimateCapacity places copies of size first fit on a scratch copy of
// the layout until no free spot is left inside the current grid. The grid
// is never grown and the layout itself is not modified.
func EstimateCapacity(grid model.GridSize, items []model.Item, size model.Size) (Capacity, error) {
	c := Capacity{Size: size}
	if size.Width <= 0 || size.Width > grid.Width {
		return c, ErrWidthOutOfBounds
	}
	if size.Height <= 0 || size.Height > grid.Height {
		return c, ErrHeightOutOfBounds
	}

	m, err := BuildOccupancy(grid, items)
	if err != nil {
		return c, err
	}
	c.FreeCells = grid.Cells() - m.OccupiedCells()

	it := model.Item{Width: size.Width, Height: size.Height}
	for row := 0; row+size.Height <= grid.Height; row++ {
		for col := 0; col+size.Width <= grid.Width; col++ {
			if !m.Free(row, col, size) {
				continue
			}
			it.X, it.Y = col, row
			if err := m.mark(it); err != nil {
				return c, err
			}
			c.WithoutGrowth++
		}
	}

	if c.FreeCells > 0 {
		c.UsePercent = float64(c.WithoutGrowth*size.Width*size.Height) / float64(c.FreeCells) * 100
	}
	return c, nil
}
