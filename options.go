package fractal

import "log/slog"

// DrawOption configures a single Draw call.
//
// Example:
//
//	var stats fractal.DrawStats
//	img, err := fractal.Draw(brush, 4, fractal.WithStats(&stats))
type DrawOption func(*drawOptions)

// drawOptions holds optional configuration for Draw.
type drawOptions struct {
	stats  *DrawStats
	logger *slog.Logger
}

// defaultDrawOptions returns the default draw options.
func defaultDrawOptions() drawOptions {
	return drawOptions{
		logger: Logger(),
	}
}

// DrawStats counts the work done by one Draw call.
type DrawStats struct {
	// Expansions is the number of sub-patterns built, one per recursion
	// level below the top.
	Expansions int

	// Blits is the number of CopyTo calls made into result buffers.
	Blits int
}

// WithStats makes Draw record its work counters into s.
// s is reset at the start of the call.
func WithStats(s *DrawStats) DrawOption {
	return func(o *drawOptions) {
		o.stats = s
	}
}

// WithLogger overrides the package logger for one Draw call.
// A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) DrawOption {
	return func(o *drawOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
