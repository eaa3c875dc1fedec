package export

import (
	"errors"
	"image"
	"testing"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/engine/texture"
	"github.com/Faultbox/paintbox/pkg/math"
)

var red = canvas.Color{R: 255, A: 255}

func TestFlattenOffsetsCanvasToOrigin(t *testing.T) {
	s := &canvas.Scene{}
	s.Append(canvas.NewRect(math.Rect{X: 110, Y: 220, W: 10, H: 10}, red))

	img, err := Flatten(s, math.Rect{X: 100, Y: 200, W: 50, H: 40}, NewRaster())
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if img.Rect != image.Rect(0, 0, 50, 40) {
		t.Fatalf("Rect = %v, want 50x40", img.Rect)
	}
	if got := img.NRGBAAt(15, 25); got != red.NRGBA() {
		t.Errorf("inside rect = %v, want red", got)
	}
	if got := img.NRGBAAt(5, 5); got.A != 0 {
		t.Errorf("background = %v, want transparent", got)
	}
}

func TestFlattenPaintOrder(t *testing.T) {
	blue := canvas.Color{B: 255, A: 255}
	s := &canvas.Scene{}
	s.Append(canvas.NewRect(math.Rect{X: 0, Y: 0, W: 20, H: 20}, red))
	s.Append(canvas.NewRect(math.Rect{X: 10, Y: 10, W: 20, H: 20}, blue))

	img, err := Flatten(s, math.Rect{W: 40, H: 40}, NewRaster())
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if got := img.NRGBAAt(15, 15); got != blue.NRGBA() {
		t.Errorf("overlap = %v, want later object on top", got)
	}
	if got := img.NRGBAAt(5, 5); got != red.NRGBA() {
		t.Errorf("uncovered = %v, want red", got)
	}
}

func TestFlattenStrokeAndImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+1], src.Pix[i+3] = 255, 255
	}
	s := &canvas.Scene{}
	s.Append(canvas.NewImage("green.png", texture.NewImage(src)))
	s.Append(canvas.NewStroke(canvas.Stroke{
		Points: []math.Vec2{{X: 0, Y: 30}, {X: 40, Y: 30}},
		Color:  red,
		Weight: 6,
	}))

	img, err := Flatten(s, math.Rect{W: 40, H: 40}, NewRaster())
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if got := img.NRGBAAt(2, 2); got.G < 200 || got.A < 200 {
		t.Errorf("image pixel = %v, want green", got)
	}
	if got := img.NRGBAAt(20, 30); got.R < 200 || got.A < 200 {
		t.Errorf("stroke pixel = %v, want red", got)
	}
	if got := img.NRGBAAt(20, 20); got.A != 0 {
		t.Errorf("off-stroke pixel = %v, want transparent", got)
	}
}

// failingTarget records whether it was released.
type failingTarget struct {
	*Raster
	beginErr error
	released int
}

func (f *failingTarget) Begin(view camera.Camera2D, w, h int) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return f.Raster.Begin(view, w, h)
}

func (f *failingTarget) Release() {
	f.released++
	f.Raster.Release()
}

func TestFlattenReleasesTargetOnFailure(t *testing.T) {
	boom := errors.New("no framebuffer")
	target := &failingTarget{Raster: NewRaster(), beginErr: boom}

	_, err := Flatten(&canvas.Scene{}, math.Rect{W: 10, H: 10}, target)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if !errors.Is(err, ErrTargetUnavailable) {
		t.Errorf("err = %v, want ErrTargetUnavailable", err)
	}
	if target.released != 1 {
		t.Errorf("released %d times, want 1", target.released)
	}
}

func TestFlattenOrRasterFallsBackToSoftware(t *testing.T) {
	s := &canvas.Scene{}
	s.Append(canvas.NewRect(math.Rect{X: 0, Y: 0, W: 10, H: 10}, red))
	target := &failingTarget{Raster: NewRaster(), beginErr: errors.New("texture too large")}

	img, err := FlattenOrRaster(s, math.Rect{W: 20, H: 20}, target)
	if err != nil {
		t.Fatalf("FlattenOrRaster: %v", err)
	}
	if target.released != 1 {
		t.Errorf("primary released %d times, want 1", target.released)
	}
	if img.Rect != image.Rect(0, 0, 20, 20) {
		t.Fatalf("Rect = %v, want 20x20", img.Rect)
	}
	if got := img.NRGBAAt(5, 5); got != red.NRGBA() {
		t.Errorf("inside rect = %v, want red", got)
	}
}

func TestFlattenOrRasterKeepsOtherErrors(t *testing.T) {
	target := &failingTarget{Raster: NewRaster()}
	_, err := FlattenOrRaster(&canvas.Scene{}, math.Rect{W: 0, H: 10}, target)
	if !errors.Is(err, ErrEmptyCanvas) {
		t.Fatalf("err = %v, want ErrEmptyCanvas", err)
	}
}

func TestFlattenEmptyCanvas(t *testing.T) {
	target := &failingTarget{Raster: NewRaster()}
	_, err := Flatten(&canvas.Scene{}, math.Rect{W: 0.5, H: 100}, target)
	if !errors.Is(err, ErrEmptyCanvas) {
		t.Fatalf("err = %v, want ErrEmptyCanvas", err)
	}
	if target.released != 1 {
		t.Errorf("released %d times, want 1", target.released)
	}
}

func TestFromBottomUp(t *testing.T) {
	pixels := []byte{
		1, 1, 1, 255, // bottom row
		2, 2, 2, 255, // top row
	}
	img, err := FromBottomUp(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FromBottomUp: %v", err)
	}
	if img.NRGBAAt(0, 0).R != 2 || img.NRGBAAt(0, 1).R != 1 {
		t.Errorf("rows not flipped: %v", img.Pix)
	}
	if _, err := FromBottomUp(pixels, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
