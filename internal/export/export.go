// Package export flattens a scene into a raster image and writes it out.
package export

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/pkg/math"
)

// ErrEmptyCanvas is returned when the canvas bounds have no pixels.
var ErrEmptyCanvas = errors.New("export: canvas has zero area")

// ErrTargetUnavailable is wrapped around a Target that cannot allocate its
// surface.
var ErrTargetUnavailable = errors.New("export: target unavailable")

// Target is an offscreen surface a scene is painted into.
type Target interface {
	canvas.Painter
	// Begin allocates a width x height surface cleared to transparent and
	// paints through view from then on.
	Begin(view camera.Camera2D, width, height int) error
	// Pixels returns the painted surface with rows top-down.
	Pixels() (*image.NRGBA, error)
	// Release frees the surface. It is safe to call more than once.
	Release()
}

// CanvasSize returns the pixel size of the exported image. Fractional
// bounds are truncated.
func CanvasSize(bounds math.Rect) (int, int) {
	return int(bounds.W), int(bounds.H)
}

// Flatten paints s into target at zoom 1 with the top-left of bounds at the
// origin. The target is released before Flatten returns, also on failure.
func Flatten(s *canvas.Scene, bounds math.Rect, target Target) (*image.NRGBA, error) {
	defer target.Release()

	w, h := CanvasSize(bounds)
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}
	if err := target.Begin(camera.Identity(bounds.Min()), w, h); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTargetUnavailable, err)
	}

	canvas.DrawScene(target, s)

	img, err := target.Pixels()
	if err != nil {
		return nil, fmt.Errorf("read export target: %w", err)
	}
	logger.Named("export").Debug("flattened scene",
		zap.Int("objects", s.Len()),
		zap.Int("width", w),
		zap.Int("height", h))
	return img, nil
}

// FlattenOrRaster flattens through target and paints the export again on a
// software Raster when target has no surface for it, as with a canvas larger
// than the GPU texture limit.
func FlattenOrRaster(s *canvas.Scene, bounds math.Rect, target Target) (*image.NRGBA, error) {
	img, err := Flatten(s, bounds, target)
	if !errors.Is(err, ErrTargetUnavailable) {
		return img, err
	}
	logger.Named("export").Warn("export target unavailable, painting in software", zap.Error(err))
	return Flatten(s, bounds, NewRaster())
}

// FromBottomUp copies tightly packed RGBA rows stored bottom row first into
// a new top-down image.
func FromBottomUp(pixels []byte, width, height int) (*image.NRGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
