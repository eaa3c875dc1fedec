// Package texture decodes image files into pixel buffers the editor can
// place on the canvas and hand to a graphics backend.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupported is returned for files whose format no decoder handles.
var ErrUnsupported = errors.New("texture: unsupported image format")

// Extensions lists the file extensions the loader accepts, for dialog
// filters.
var Extensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tga", "tif", "tiff", "webp"}

// Image is a decoded image kept in memory. It satisfies the canvas texture
// contract and serves as the pixel source for software exports and GPU
// uploads.
type Image struct {
	pix *image.NRGBA
}

// NewImage wraps img, converting it to non-premultiplied RGBA when needed.
func NewImage(img image.Image) *Image {
	return &Image{pix: ToNRGBA(img)}
}

// Size returns the natural pixel dimensions, or zero after Release.
func (i *Image) Size() (int, int) {
	if i.pix == nil {
		return 0, 0
	}
	b := i.pix.Bounds()
	return b.Dx(), b.Dy()
}

// Source returns the pixels, or nil after Release.
func (i *Image) Source() image.Image {
	if i.pix == nil {
		return nil
	}
	return i.pix
}

// NRGBA returns the pixels as a packed buffer, or nil after Release.
func (i *Image) NRGBA() *image.NRGBA {
	return i.pix
}

// Release drops the pixel buffer.
func (i *Image) Release() {
	i.pix = nil
}

// Load reads and decodes the image file at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
		}
		return nil, fmt.Errorf("decoding %s image: %w", format, err)
	}
	return NewImage(img), nil
}

// Name returns the display name for an image loaded from path: its base
// name, splitting on both slash styles. Names are NFC so decomposed file
// names (as macOS stores them) display and truncate like typed ones.
func Name(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	return norm.NFC.String(path)
}

// ToNRGBA returns img as *image.NRGBA with its origin at 0,0, converting
// only when needed.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
