package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/Faultbox/paintbox/internal/engine/texture"
	"github.com/Faultbox/paintbox/internal/logger"
)

// ErrUnsupportedFormat is returned for a file extension no encoder handles.
var ErrUnsupportedFormat = errors.New("export: unsupported image format")

// Format identifies an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTGA  Format = "tga"
	FormatTIFF Format = "tiff"
	FormatPDF  Format = "pdf"
)

// Extensions lists the file extensions accepted by FormatFromPath, in the
// order save dialogs offer them.
var Extensions = []string{"png", "jpg", "jpeg", "bmp", "tga", "tif", "tiff", "pdf"}

// Options tunes the encoders.
type Options struct {
	JPEGQuality int
	// DefaultFormat is used for paths without an extension.
	DefaultFormat Format
}

// DefaultOptions returns the encoder settings used when none are configured.
func DefaultOptions() Options {
	return Options{JPEGQuality: 95, DefaultFormat: FormatPNG}
}

// WithDefaultExt appends the extension of opts.DefaultFormat to a path that
// has none. Other paths are returned unchanged.
func (o Options) WithDefaultExt(path string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	f := o.DefaultFormat
	if f == "" {
		f = FormatPNG
	}
	return path + "." + string(f)
}

// FormatFromPath picks the encoding from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return ParseFormat(ext)
}

// ParseFormat maps a format name or extension to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "bmp":
		return FormatBMP, nil
	case "tga":
		return FormatTGA, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, opts Options) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		q := opts.JPEGQuality
		if q <= 0 || q > 100 {
			q = DefaultOptions().JPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTGA:
		return texture.EncodeTGA(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatPDF:
		return encodePDF(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Save encodes img into the file at path, choosing the format from its
// extension. A partially written file is removed on failure.
func Save(path string, img image.Image, opts Options) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(file, img, f, opts); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	b := img.Bounds()
	logger.Named("export").Info("image exported",
		zap.String("path", path),
		zap.String("format", string(f)),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return nil
}

// encodePDF writes a single page sized to the image at one point per pixel.
func encodePDF(w io.Writer, img image.Image) error {
	b := img.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("paintbox", false)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", opts, &buf)
	pdf.ImageOptions("canvas", 0, 0, width, height, false, opts, 0, "")
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
