package model

import "image/color"

// itemPalette is cycled through by item index so the same layout always
// renders with the same colors.
var itemPalette = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 255},  // green
	{R: 33, G: 150, B: 243, A: 255}, // blue
	{R: 255, G: 152, B: 0, A: 255},  // orange
	{R: 156, G: 39, B: 176, A: 255}, // purple
	{R: 0, G: 188, B: 212, A: 255},  // cyan
	{R: 244, G: 67, B: 54, A: 255},  // red
	{R: 255, G: 235, B: 59, A: 255}, // yellow
	{R: 121, G: 85, B: 72, A: 255},  // brown
}

// ItemColor returns the display color for the item at the given index.
func ItemColor(index int) color.NRGBA {
	if index < 0 {
		index = -index
	}
	return itemPalette[index%len(itemPalette)]
}

// PaletteSize is the number of distinct item colors.
func PaletteSize() int {
	return len(itemPalette)
}
