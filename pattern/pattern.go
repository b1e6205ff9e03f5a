package pattern

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/segmenter"
	"github.com/gogpu/fractal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSize is the largest pattern input accepted, in bytes.
const MaxSize = 1 << 20

// ErrTooLarge is returned when a pattern input exceeds MaxSize.
var ErrTooLarge = errors.New("pattern: input too large")

// Option configures Parse, Load and Format.
type Option func(*options)

type options struct {
	blank rune
	ink   rune
}

func defaultOptions() options {
	return options{
		blank: ' ',
		ink:   '#',
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBlank sets the glyph that marks an off cell. The default is a space.
func WithBlank(r rune) Option {
	return func(o *options) {
		o.blank = r
	}
}

// WithInk sets the glyph Format writes for an on cell. The default is '#'.
// Parse treats every non-blank glyph as on regardless of this setting.
func WithInk(r rune) Option {
	return func(o *options) {
		o.ink = r
	}
}

// Parse reads a pattern from r.
func Parse(r io.Reader, opts ...Option) (*fractal.Pixmap, error) {
	o := buildOptions(opts)

	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	raw, err := io.ReadAll(io.LimitReader(dec, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("pattern: read: %w", err)
	}
	if len(raw) > MaxSize {
		return nil, ErrTooLarge
	}

	text := norm.NFC.String(string(raw))
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	blank := string(o.blank)
	rows := make([][]bool, len(lines))
	var seg segmenter.Segmenter
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		seg.Init([]rune(line))
		iter := seg.GraphemeIterator()
		for iter.Next() {
			rows[y] = append(rows[y], string(iter.Grapheme().Text) != blank)
		}
	}

	return fractal.FromRows(rows)
}

// Load reads the pattern file at path.
func Load(path string, opts ...Option) (*fractal.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pattern: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	p, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	fractal.Logger().Debug("pattern: loaded",
		slog.String("path", path),
		slog.Int("width", p.Width()),
		slog.Int("height", p.Height()),
		slog.Int("on", p.Count()))
	return p, nil
}

// Format renders p in pattern syntax, one newline-terminated line per row.
// Parse(Format(p)) reproduces p.
func Format(p *fractal.Pixmap, opts ...Option) string {
	o := buildOptions(opts)

	w, h := p.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if p.On(x, y) {
				sb.WriteRune(o.ink)
			} else {
				sb.WriteRune(o.blank)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
