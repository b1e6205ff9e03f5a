package fractal

import (
	"image"
	"image/color"
)

// Colors used when a grid is rasterized.
var (
	// Ink is the color of an on cell.
	Ink = color.Gray{Y: 0}

	// Paper is the color of an off cell.
	Paper = color.Gray{Y: 255}
)

// Raster is a read-only on/off surface that can be rasterized.
// Both *Pixmap and *Canvas implement it.
type Raster interface {
	// Size returns the width and height of the surface.
	Size() (width, height int)

	// On reports whether the cell at (x, y) is on. x and y must lie
	// inside Size.
	On(x, y int) bool
}

var (
	_ Raster      = (*Pixmap)(nil)
	_ Raster      = (*Canvas)(nil)
	_ image.Image = (*Pixmap)(nil)
	_ image.Image = (*Canvas)(nil)
)

// ToGray rasterizes r row by row into an 8-bit grayscale image.
// On cells become black (luma 0) and off cells white (luma 255).
func ToGray(r Raster) *image.Gray {
	w, h := r.Size()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			if r.On(x, y) {
				row[x] = Ink.Y
			} else {
				row[x] = Paper.Y
			}
		}
	}
	return img
}
