// Command fractal renders a self-similar image from a text brush pattern.
//
// Usage:
//
//	fractal [-d depth] [-p pixel.txt] [-o out.png] brush.txt
//
// The output format follows the extension of the output path: .png (the
// default), .bmp, .tif/.tiff or .pdf.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/internal/image"
	"github.com/gogpu/fractal/internal/version"
	"github.com/gogpu/fractal/pattern"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	input   string
	output  string
	pixel   string
	depth   int
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		cfg         config
		showVersion bool
	)

	fs := flag.NewFlagSet("fractal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.depth, "d", 0, "recursion depth (shorthand)")
	fs.IntVar(&cfg.depth, "depth", 0, "recursion depth")
	fs.StringVar(&cfg.output, "o", "", "output file (shorthand)")
	fs.StringVar(&cfg.output, "output", "", "output file (default: input path + .png)")
	fs.StringVar(&cfg.pixel, "p", "", "pixel pattern (shorthand)")
	fs.StringVar(&cfg.pixel, "pixel", "", "pixel pattern drawn for every on dot")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging (shorthand)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "debug logging")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		w := fs.Output()
		_, _ = fmt.Fprintln(w, "usage: fractal [flags] pattern")
		_, _ = fmt.Fprintln(w)
		fs.PrintDefaults()
	}

	positional, err := parseInterspersed(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(stdout)
		fs.Usage()
		return exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "fractal: %v\n", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "fractal %s\n", version.String())
		return exitOK
	}
	if len(positional) != 1 {
		_, _ = fmt.Fprintf(stderr, "fractal: expected one pattern file, got %d arguments\n", len(positional))
		fs.SetOutput(stderr)
		fs.Usage()
		return exitUsage
	}
	cfg.input = positional[0]
	if cfg.output == "" {
		cfg.output = cfg.input + ".png"
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if cfg.verbose {
		fractal.SetLogger(logger)
		defer fractal.SetLogger(nil)
	}

	if err := render(cfg, logger); err != nil {
		_, _ = fmt.Fprintf(stderr, "fractal: %v\n", err)
		return exitError
	}
	return exitOK
}

// parseInterspersed parses fs over args, allowing flags after positional
// arguments. It returns the positional arguments in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// render loads the inputs, builds the image and writes it. Nothing is
// written unless every step before the encoder succeeded.
func render(cfg config, logger *slog.Logger) error {
	brush, err := pattern.Load(cfg.input)
	if err != nil {
		return err
	}

	img, err := fractal.Draw(brush, cfg.depth)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.input, err)
	}

	var out fractal.Raster = img
	if cfg.pixel != "" {
		stencil, err := pattern.Load(cfg.pixel)
		if err != nil {
			return err
		}
		c, err := fractal.NewCanvas(img, stencil)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.pixel, err)
		}
		out = c
	}

	if err := image.Save(cfg.output, fractal.ToGray(out)); err != nil {
		return fmt.Errorf("%s: %w", cfg.output, err)
	}

	w, h := out.Size()
	logger.Info("wrote image",
		slog.String("path", cfg.output),
		slog.String("format", image.FormatFromPath(cfg.output).String()),
		slog.Int("width", w),
		slog.Int("height", h))
	return nil
}
