package fractal

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
)

// Canvas is a read-only magnified view of a source pixmap. Every source
// cell becomes a stencil-sized tile: a copy of the stencil where the
// source cell is on, an empty tile where it is off.
//
// A Canvas borrows source and stencil without copying them. Neither is
// modified, and the caller must not modify them while the Canvas is in
// use. Several canvases may share the same grids.
type Canvas struct {
	source  *Pixmap
	stencil *Pixmap
	blank   *Pixmap // all off, stencil-sized
	width   int
	height  int
}

// NewCanvas creates a canvas of size
// (source.Width()*stencil.Width(), source.Height()*stencil.Height()).
func NewCanvas(source, stencil *Pixmap) (*Canvas, error) {
	if source == nil {
		return nil, ErrEmptyBrush
	}
	if stencil == nil || stencil.width == 0 || stencil.height == 0 {
		return nil, ErrEmptyStencil
	}

	width, okW := mulInt(source.width, stencil.width)
	height, okH := mulInt(source.height, stencil.height)
	if !okW || !okH {
		return nil, fmt.Errorf("%w: %dx%d source with %dx%d stencil",
			ErrTooLarge, source.width, source.height, stencil.width, stencil.height)
	}
	if _, err := area(width, height); err != nil {
		return nil, err
	}

	blank, err := NewPixmap(stencil.width, stencil.height, false)
	if err != nil {
		return nil, err
	}

	Logger().Debug("fractal: canvas",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("stencil_on", stencil.Count()))

	return &Canvas{
		source:  source,
		stencil: stencil,
		blank:   blank,
		width:   width,
		height:  height,
	}, nil
}

// mulInt returns a*b for non-negative a and b. ok is false on overflow.
func mulInt(a, b int) (product int, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// On reports whether the canvas cell at (x, y) is on. It is O(1) and does
// not allocate. x and y must lie inside Size.
func (c *Canvas) On(x, y int) bool {
	sw, sh := c.stencil.width, c.stencil.height
	tile := c.blank
	if c.source.On(x/sw, y/sh) {
		tile = c.stencil
	}
	return tile.On(x%sw, y%sh)
}

// Get returns the canvas cell at (x, y).
// Returns ErrOutOfBounds if (x, y) lies outside the canvas.
func (c *Canvas) Get(x, y int) (bool, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.On(x, y), nil
}

// Render materializes the canvas into a new pixmap owned by the caller.
func (c *Canvas) Render() *Pixmap {
	out := &Pixmap{
		width:  c.width,
		height: c.height,
		data:   make([]bool, c.width*c.height),
	}
	sw, sh := c.stencil.width, c.stencil.height
	for y := 0; y < c.source.height; y++ {
		for x := 0; x < c.source.width; x++ {
			if !c.source.On(x, y) {
				continue
			}
			for ty := 0; ty < sh; ty++ {
				row := out.data[(y*sh+ty)*c.width+x*sw:]
				for tx, on := range c.stencil.data[ty*sw : (ty+1)*sw] {
					if on {
						row[tx] = true
					}
				}
			}
		}
	}
	return out
}

// At implements the image.Image interface. On cells are black, off cells
// white. Coordinates outside the canvas are white.
func (c *Canvas) At(x, y int) color.Color {
	if x >= 0 && x < c.width && y >= 0 && y < c.height && c.On(x, y) {
		return Ink
	}
	return Paper
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.GrayModel
}
