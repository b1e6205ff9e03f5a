package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePattern(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func decodePNG(t *testing.T, path string) (w, h int, black func(x, y int) bool) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy(), func(x, y int) bool {
		r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
		return r == 0
	}
}

func TestRunDepth(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X \n X\n")
	out := filepath.Join(dir, "out.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-d", "2", "-o", out, brush}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	w, h, black := decodePNG(t, out)
	require.Equal(t, 4, w)
	require.Equal(t, 4, h)
	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, x == y, black(x, y), "pixel (%d,%d)", x, y)
		}
	}
	assert.Contains(t, stderr.String(), "wrote image")
}

func TestRunDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{brush}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	w, h, black := decodePNG(t, brush+".png")
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.True(t, black(0, 0))
}

func TestRunPixelLongFlagsAfterInput(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X \n X\n")
	pixel := writePattern(t, dir, "pixel.txt", "XXX\nXXX\nXXX\n")
	out := filepath.Join(dir, "big.png")

	var stdout, stderr bytes.Buffer
	code := run([]string{brush, "--depth", "1", "--pixel", pixel, "--output", out}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())

	w, h, black := decodePNG(t, out)
	require.Equal(t, 6, w)
	require.Equal(t, 6, h)
	for y := range 6 {
		for x := range 6 {
			want := (x < 3) == (y < 3)
			assert.Equal(t, want, black(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRunOtherFormats(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X \nXX\n")

	for _, name := range []string{"out.bmp", "out.tiff", "out.pdf"} {
		out := filepath.Join(dir, name)
		var stdout, stderr bytes.Buffer
		code := run([]string{"-d", "3", "-o", out, brush}, &stdout, &stderr)
		require.Equal(t, exitOK, code, "%s: stderr: %s", name, stderr.String())

		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), name)
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "usage: fractal")
	assert.Contains(t, stdout.String(), "-depth")
	assert.Empty(t, stderr.String())
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-version"}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout.String(), "fractal dev"), stdout.String())
}

func TestRunUsageErrors(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", nil, "expected one pattern file"},
		{"two inputs", []string{brush, brush}, "expected one pattern file"},
		{"bad depth", []string{"-d", "many", brush}, "invalid value"},
		{"unknown flag", []string{"-x", brush}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X \nXX\n")
	empty := writePattern(t, dir, "empty.txt", "")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{missing}, missing},
		{"missing pixel", []string{"-p", missing, brush}, missing},
		{"empty brush", []string{empty}, "empty brush"},
		{"empty pixel", []string{"-p", empty, brush}, "empty stencil"},
		{"negative depth", []string{"-d", "-1", brush}, "invalid depth"},
		{"depth too large", []string{"-d", "80", brush}, "too large"},
		{"unaddressable depth", []string{"-d", "31", brush}, "too large"},
		{"unwritable output", []string{"-o", filepath.Join(dir, "no", "out.png"), brush}, "out.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr.String(), tt.want)
			assert.Equal(t, 1, strings.Count(stderr.String(), "\n"), "want a single diagnostic line, got: %s", stderr.String())
		})
	}

	_, err := os.Stat(brush + ".png")
	assert.True(t, os.IsNotExist(err), "failed runs must not leave output behind")
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()
	brush := writePattern(t, dir, "brush.txt", "X \nXX\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "-d", "2", brush}, &stdout, &stderr)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())
	assert.Contains(t, stderr.String(), "fractal: draw")
	assert.Contains(t, stderr.String(), "pattern: loaded")
}
