package fractal

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/bits"
	"strings"
)

// Pixmap is a fixed-size grid of on/off cells.
//
// Cells are stored row-major, one bool per cell, addressed as
// y*width + x. A Pixmap is never resized; a different size means a new
// Pixmap.
type Pixmap struct {
	width  int
	height int
	data   []bool
}

// NewPixmap creates a width x height pixmap with every cell set to fill.
// Zero-sized pixmaps are allowed.
func NewPixmap(width, height int, fill bool) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n, err := area(width, height)
	if err != nil {
		return nil, err
	}

	p := &Pixmap{
		width:  width,
		height: height,
		data:   make([]bool, n),
	}
	if fill {
		p.Fill(true)
	}
	return p, nil
}

// FromRows builds a pixmap from rows of cells. The height is the number of
// rows and the width is the length of the longest row; shorter rows are
// padded on the right with off cells.
func FromRows(rows [][]bool) (*Pixmap, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	p, err := NewPixmap(width, len(rows), false)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(p.data[y*width:], row)
	}
	return p, nil
}

// maxCells caps the cell count of any grid. A bool per cell, so this keeps
// allocations below the runtime's addressable heap limit.
const maxCells = 1 << 40

// area returns width*height, or ErrTooLarge if the product does not fit
// in an int or exceeds maxCells.
func area(width, height int) (int, error) {
	hi, lo := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || lo > math.MaxInt || lo > maxCells {
		return 0, fmt.Errorf("%w: %dx%d cells", ErrTooLarge, width, height)
	}
	return int(lo), nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Size returns the width and height of the pixmap.
func (p *Pixmap) Size() (width, height int) { return p.width, p.height }

func (p *Pixmap) contains(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// Get returns the cell at (x, y).
// Returns ErrOutOfBounds if (x, y) lies outside the pixmap.
func (p *Pixmap) Get(x, y int) (bool, error) {
	if !p.contains(x, y) {
		return false, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	return p.data[y*p.width+x], nil
}

// On reports whether the cell at (x, y) is on. It performs no bounds
// checking beyond the slice index; callers must stay inside Size.
func (p *Pixmap) On(x, y int) bool {
	return p.data[y*p.width+x]
}

// Set sets the cell at (x, y). No other cell is affected.
// Returns ErrOutOfBounds if (x, y) lies outside the pixmap.
func (p *Pixmap) Set(x, y int, value bool) error {
	if !p.contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	p.data[y*p.width+x] = value
	return nil
}

// Fill sets every cell to value.
func (p *Pixmap) Fill(value bool) {
	for i := range p.data {
		p.data[i] = value
	}
}

// Count returns the number of on cells.
func (p *Pixmap) Count() int {
	n := 0
	for _, v := range p.data {
		if v {
			n++
		}
	}
	return n
}

// Clone creates an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	clone := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]bool, len(p.data)),
	}
	copy(clone.data, p.data)
	return clone
}

// Equal reports whether both pixmaps have the same size and cells.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.width != other.width || p.height != other.height {
		return false
	}
	for i, v := range p.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// CopyTo merges the on cells of p into dst with p's origin placed at
// (xOff, yOff). Off cells of p are skipped, so on cells already present in
// dst survive: the copy is a logical OR, not an overwrite.
//
// The whole of p must fit inside dst; otherwise ErrOutOfBounds is returned
// and dst is left unchanged.
func (p *Pixmap) CopyTo(dst *Pixmap, xOff, yOff int) error {
	if xOff < 0 || yOff < 0 || xOff > dst.width-p.width || yOff > dst.height-p.height {
		return fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d",
			ErrOutOfBounds, p.width, p.height, xOff, yOff, dst.width, dst.height)
	}
	for y := 0; y < p.height; y++ {
		src := p.data[y*p.width : (y+1)*p.width]
		row := dst.data[(y+yOff)*dst.width+xOff:]
		for x, v := range src {
			if v {
				row[x] = true
			}
		}
	}
	return nil
}

// SubView returns an independent width x height copy of the region whose
// top-left corner is (xOff, yOff). Source cells outside p read as off, so
// the region may hang past any edge of p.
func (p *Pixmap) SubView(xOff, yOff, width, height int) (*Pixmap, error) {
	sub, err := NewPixmap(width, height, false)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		sy := y + yOff
		if sy < 0 || sy >= p.height {
			continue
		}
		for x := 0; x < width; x++ {
			sx := x + xOff
			if sx < 0 || sx >= p.width {
				continue
			}
			sub.data[y*width+x] = p.data[sy*p.width+sx]
		}
	}
	return sub, nil
}

// String renders the pixmap as rows of '#' (on) and '.' (off).
func (p *Pixmap) String() string {
	var sb strings.Builder
	sb.Grow((p.width + 1) * p.height)
	for y := 0; y < p.height; y++ {
		for _, v := range p.data[y*p.width : (y+1)*p.width] {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// At implements the image.Image interface. On cells are black, off cells
// white. Coordinates outside the pixmap are white.
func (p *Pixmap) At(x, y int) color.Color {
	if p.contains(x, y) && p.On(x, y) {
		return Ink
	}
	return Paper
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.GrayModel
}
