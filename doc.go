// Package fractal builds self-similar monochrome images by stamping a
// small pattern into itself.
//
// # Overview
//
// A brush is a small on/off [Pixmap]. [Draw] replaces every on cell of
// the brush with the whole brush, and repeats that depth times, so the
// result of a w x h brush is w^depth x h^depth cells. A brush such as
//
//	#.
//	##
//
// drawn at depth 5 gives a 32 x 32 Sierpinski triangle.
//
// # Quick Start
//
//	import "github.com/gogpu/fractal"
//
//	brush, _ := fractal.FromRows([][]bool{
//	    {true, false},
//	    {true, true},
//	})
//	img, err := fractal.Draw(brush, 5)
//	if err != nil {
//	    return err
//	}
//	gray := fractal.ToGray(img) // *image.Gray, on = black
//
// # Magnification
//
// A [Canvas] shows a source pixmap with each cell blown up into a tile
// taken from a second pixmap, the stencil. On cells show the stencil, off
// cells an empty tile. The canvas is computed per point and never
// materialized unless [Canvas.Render] is called.
//
// # Coordinates
//
// Origin (0,0) is the top-left cell, x grows right and y grows down.
// Checked accessors (Get, Set, CopyTo) return [ErrOutOfBounds] for
// coordinates outside a grid. [Pixmap.SubView] is the one lenient
// accessor: cells outside the source read as off.
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package fractal
