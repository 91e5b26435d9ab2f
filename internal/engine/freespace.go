package engine

import (
	"sort"

	"github.com/piwi3910/GridPlace/internal/model"
)

// FreeStrips returns the free bands around the items' bounding box: the
// columns right of every item over the full height, and the rows below
// every item up to the bounding box's right edge. Empty bands are left
// out; the rest are sorted by area, largest first.
func FreeStrips(grid model.GridSize, items []model.Item) []model.Region {
	if len(items) == 0 {
		return []model.Region{{Width: grid.Width, Height: grid.Height}}
	}

	var maxRight, maxBottom int
	for _, it := range items {
		if r := it.X + it.Width; r > maxRight {
			maxRight = r
		}
		if b := it.Bottom(); b > maxBottom {
			maxBottom = b
		}
	}

	var strips []model.Region
	right := model.Region{X: maxRight, Y: 0, Width: grid.Width - maxRight, Height: grid.Height}
	if !right.Empty() {
		strips = append(strips, right)
	}
	bottom := model.Region{X: 0, Y: maxBottom, Width: maxRight, Height: grid.Height - maxBottom}
	if !bottom.Empty() {
		strips = append(strips, bottom)
	}

	sort.SliceStable(strips, func(i, j int) bool {
		return strips[i].Area() > strips[j].Area()
	})
	return strips
}

// LargestFree returns the largest all-free rectangle in the matrix. Ties
// go to the first one in row-major order of the top-left corner. The
// second result is false when every cell is occupied.
func LargestFree(m *OccupancyMatrix) (model.Region, bool) {
	var best model.Region
	heights := make([]int, m.Width())

	for row := 0; row < m.Height(); row++ {
		// heights[c] counts free cells ending at this row in column c.
		for c := range heights {
			if m.Occupied(row, c) {
				heights[c] = 0
			} else {
				heights[c]++
			}
		}
		for left := 0; left < len(heights); left++ {
			h := heights[left]
			for right := left; right < len(heights) && h > 0; right++ {
				if heights[right] < h {
					h = heights[right]
				}
				if h == 0 {
					break
				}
				r := model.Region{X: left, Y: row - h + 1, Width: right - left + 1, Height: h}
				if r.Area() > best.Area() || (r.Area() == best.Area() && before(r, best)) {
					best = r
				}
			}
		}
	}
	return best, !best.Empty()
}

// before orders regions by the row-major position of their top-left cell.
func before(a, b model.Region) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
