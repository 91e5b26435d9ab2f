package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/piwi3910/GridPlace/internal/model"
)

// PNGOptions controls raster rendering of a layout.
type PNGOptions struct {
	CellSize int     // pixels per grid cell
	Padding  int     // pixels around the grid
	FontSize float64 // label size in points
}

// DefaultPNGOptions returns sensible rendering options.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{CellSize: 48, Padding: 16, FontSize: 12}
}

var (
	pngBackground = color.RGBA{255, 255, 255, 255}
	pngGridFill   = color.RGBA{245, 245, 245, 255}
	pngGridLine   = color.RGBA{210, 210, 210, 255}
	pngBorder     = color.RGBA{30, 30, 30, 255}
	pngText       = color.RGBA{0, 0, 0, 255}
)

// RenderPNG draws the layout as a PNG image and writes it to w.
func RenderPNG(layout model.Layout, w io.Writer, opts PNGOptions) error {
	img, err := renderLayoutImage(layout, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// ExportPNG renders the layout to a PNG file at path.
func ExportPNG(path string, layout model.Layout, opts PNGOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create PNG file: %w", err)
	}
	if err := RenderPNG(layout, f, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// imageSize returns the pixel dimensions of the rendered layout.
func imageSize(grid model.GridSize, opts PNGOptions) (int, int) {
	return grid.Width*opts.CellSize + 2*opts.Padding, grid.Height*opts.CellSize + 2*opts.Padding
}

func renderLayoutImage(layout model.Layout, opts PNGOptions) (*image.RGBA, error) {
	grid := layout.Grid
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("invalid grid %s", grid)
	}
	if opts.CellSize < 4 {
		return nil, fmt.Errorf("cell size must be at least 4 pixels, got %d", opts.CellSize)
	}

	face, err := newLabelFace(opts.FontSize)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	width, height := imageSize(grid, opts)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Bounds(), pngBackground)

	cell := func(col, row int) image.Point {
		return image.Pt(opts.Padding+col*opts.CellSize, opts.Padding+row*opts.CellSize)
	}

	gridRect := image.Rectangle{Min: cell(0, 0), Max: cell(grid.Width, grid.Height)}
	fillRect(img, gridRect, pngGridFill)
	for c := 0; c <= grid.Width; c++ {
		x := cell(c, 0).X
		fillRect(img, image.Rect(x, gridRect.Min.Y, x+1, gridRect.Max.Y), pngGridLine)
	}
	for r := 0; r <= grid.Height; r++ {
		y := cell(0, r).Y
		fillRect(img, image.Rect(gridRect.Min.X, y, gridRect.Max.X, y+1), pngGridLine)
	}

	for i, it := range layout.Items {
		r := image.Rectangle{Min: cell(it.X, it.Y), Max: cell(it.X+it.Width, it.Y+it.Height)}
		fillRect(img, r, pngBorder)
		fillRect(img, r.Inset(1), model.ItemColor(i))

		center := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
		drawTextCentered(img, face, center, it.Label, r.Dx()-4)
	}

	return img, nil
}

func newLabelFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// drawTextCentered draws text centered on p, skipping it when wider than maxWidth.
func drawTextCentered(img draw.Image, face font.Face, p image.Point, text string, maxWidth int) {
	width := font.MeasureString(face, text).Ceil()
	if text == "" || width > maxWidth {
		return
	}
	ascent := face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pngText),
		Face: face,
		Dot:  fixed.P(p.X-width/2, p.Y+ascent/2),
	}
	d.DrawString(text)
}
