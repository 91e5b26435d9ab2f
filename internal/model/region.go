package model

import "fmt"

// Region is a rectangle of grid cells, e.g. a block of free space.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Area returns the number of cells in the region.
func (r Region) Area() int {
	return r.Width * r.Height
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Fits reports whether an item of the given size fits inside the region.
func (r Region) Fits(size Size) bool {
	return size.Width <= r.Width && size.Height <= r.Height
}

func (r Region) String() string {
	return fmt.Sprintf("%d x %d at (%d, %d)", r.Width, r.Height, r.X, r.Y)
}
