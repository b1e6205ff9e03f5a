package fractal

import "errors"

// Errors returned by grid, fractal and canvas operations.
var (
	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("fractal: invalid dimensions")

	// ErrOutOfBounds is returned when coordinates fall outside a grid.
	ErrOutOfBounds = errors.New("fractal: coordinates out of bounds")

	// ErrEmptyBrush is returned when a brush or source grid is nil or has
	// a zero width or height.
	ErrEmptyBrush = errors.New("fractal: empty brush")

	// ErrEmptyStencil is returned when a canvas stencil is nil or has a
	// zero width or height.
	ErrEmptyStencil = errors.New("fractal: empty stencil")

	// ErrTooLarge is returned when the requested grid would not fit in
	// addressable memory.
	ErrTooLarge = errors.New("fractal: grid too large")

	// ErrInvalidDepth is returned for a negative recursion depth.
	ErrInvalidDepth = errors.New("fractal: invalid depth")
)
