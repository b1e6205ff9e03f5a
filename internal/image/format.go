// Package image writes rasterized grids to image files.
package image

import (
	"path/filepath"
	"strings"
)

// Format is an output container format.
type Format uint8

const (
	// FormatPNG is 8-bit grayscale PNG. It is the default.
	FormatPNG Format = iota

	// FormatBMP is an 8-bit paletted Windows bitmap.
	FormatBMP

	// FormatTIFF is 8-bit grayscale TIFF with deflate compression.
	FormatTIFF

	// FormatPDF is a single-page PDF holding the image as a PNG.
	FormatPDF
)

const unknownFormat = "Unknown"

// String returns the conventional name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatBMP:
		return "BMP"
	case FormatTIFF:
		return "TIFF"
	case FormatPDF:
		return "PDF"
	default:
		return unknownFormat
	}
}

// FormatFromPath picks the format from the file extension of path.
// Unknown or missing extensions select FormatPNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	case ".pdf":
		return FormatPDF
	default:
		return FormatPNG
	}
}
