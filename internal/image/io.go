package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for a Format value with no encoder.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

// maxPDFSide is the largest page side PDF viewers accept, in points.
const maxPDFSide = 14400.0

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		err = encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", f, err)
	}
	return nil
}

// encodePDF writes img as the only content of a one-page PDF. The page is
// one point per pixel, scaled down when a side would exceed maxPDFSide.
func encodePDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	pw, ph := float64(max(b.Dx(), 1)), float64(max(b.Dy(), 1))
	if side := max(pw, ph); side > maxPDFSide {
		scale := maxPDFSide / side
		pw, ph = pw*scale, ph*scale
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("raster", opts, &buf)
	pdf.ImageOptions("raster", 0, 0, pw, ph, false, opts, 0, "")

	return pdf.Output(w)
}

// Save writes img to path, choosing the format from the extension.
// The file is removed again if encoding fails.
func Save(path string, img image.Image) error {
	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, img, FormatFromPath(path)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	return f.Close()
}
