package fractal

import (
	"fmt"
	"log/slog"
	"math"
	"math/bits"
)

// Dims returns the size of the grid Draw produces for brush at depth:
// brush.Width()^depth by brush.Height()^depth. It fails with ErrTooLarge
// if either side does not fit in an int or the cell count is more than a
// pixmap can hold.
func Dims(brush *Pixmap, depth int) (width, height int, err error) {
	if err := validateBrush(brush, depth); err != nil {
		return 0, 0, err
	}
	if width, err = ipow(brush.width, depth); err != nil {
		return 0, 0, err
	}
	if height, err = ipow(brush.height, depth); err != nil {
		return 0, 0, err
	}
	if _, err = area(width, height); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func validateBrush(brush *Pixmap, depth int) error {
	if brush == nil || brush.width == 0 || brush.height == 0 {
		return ErrEmptyBrush
	}
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	return nil
}

// ipow returns base^exp for base >= 1, or ErrTooLarge on int overflow.
func ipow(base, exp int) (int, error) {
	if base == 1 {
		return 1, nil
	}
	r := uint64(1)
	for range exp {
		hi, lo := bits.Mul64(r, uint64(base))
		if hi != 0 || lo > math.MaxInt {
			return 0, fmt.Errorf("%w: %d^%d", ErrTooLarge, base, exp)
		}
		r = lo
	}
	return int(r), nil
}

// Draw stamps brush into itself depth times and returns the result, a new
// pixmap of size Dims(brush, depth).
//
// Each on cell of the brush is replaced by the whole pattern one level
// down; each off cell by an empty block. Depth 0 returns a copy of the
// brush.
//
// All on cells of a level expand to the same sub-pattern, so the
// sub-pattern is built once per level and blitted with CopyTo for every
// on cell. The number of recursive expansions is therefore depth-1, not
// exponential in the number of on cells.
//
// The brush is not modified.
func Draw(brush *Pixmap, depth int, opts ...DrawOption) (*Pixmap, error) {
	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.stats != nil {
		*o.stats = DrawStats{}
	}

	if _, _, err := Dims(brush, depth); err != nil {
		return nil, err
	}
	// A 1x1 brush is its own expansion at every depth.
	if depth == 0 || (brush.width == 1 && brush.height == 1) {
		return brush.Clone(), nil
	}

	b := &builder{
		brush:   brush,
		widths:  make([]int, depth+1),
		heights: make([]int, depth+1),
		on:      brush.Count(),
		opts:    o,
	}
	b.widths[0], b.heights[0] = 1, 1
	for d := 1; d <= depth; d++ {
		b.widths[d] = b.widths[d-1] * brush.width
		b.heights[d] = b.heights[d-1] * brush.height
	}

	o.logger.Debug("fractal: draw",
		slog.Int("brush_width", brush.width),
		slog.Int("brush_height", brush.height),
		slog.Int("brush_on", b.on),
		slog.Int("depth", depth),
		slog.Int("width", b.widths[depth]),
		slog.Int("height", b.heights[depth]))

	return b.expand(depth)
}

// builder carries the per-call state of Draw. widths[d] and heights[d] are
// the grid size at recursion level d.
type builder struct {
	brush   *Pixmap
	widths  []int
	heights []int
	on      int
	opts    drawOptions
}

func (b *builder) expand(depth int) (*Pixmap, error) {
	out := &Pixmap{
		width:  b.widths[depth],
		height: b.heights[depth],
		data:   make([]bool, b.widths[depth]*b.heights[depth]),
	}

	if depth == 1 {
		b.blitted()
		return out, b.brush.CopyTo(out, 0, 0)
	}

	stepX, stepY := b.widths[depth-1], b.heights[depth-1]

	// sub is the brush expanded one level down. Built on the first on
	// cell, reused for the rest.
	var sub *Pixmap
	blits := 0
	for by := 0; by < b.brush.height; by++ {
		for bx := 0; bx < b.brush.width; bx++ {
			if !b.brush.On(bx, by) {
				continue
			}
			if sub == nil {
				var err error
				if sub, err = b.expand(depth - 1); err != nil {
					return nil, err
				}
				if b.opts.stats != nil {
					b.opts.stats.Expansions++
				}
			}
			if err := sub.CopyTo(out, bx*stepX, by*stepY); err != nil {
				return nil, err
			}
			b.blitted()
			blits++
		}
	}

	b.opts.logger.Debug("fractal: level done",
		slog.Int("depth", depth),
		slog.Int("blits", blits),
		slog.Bool("expanded", sub != nil))
	return out, nil
}

func (b *builder) blitted() {
	if b.opts.stats != nil {
		b.opts.stats.Blits++
	}
}
