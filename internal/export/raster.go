package export

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/pkg/math"
)

// Source is implemented by textures that keep their decoded pixels, which
// lets the software target paint them.
type Source interface {
	Source() image.Image
}

// Raster paints on the CPU. It needs no graphics context, so it serves
// headless exports and tests. Rows come out top-down.
type Raster struct {
	img  *image.NRGBA
	view camera.Camera2D
}

var _ Target = (*Raster)(nil)

// NewRaster returns an unallocated software target.
func NewRaster() *Raster {
	return &Raster{}
}

func (r *Raster) Begin(view camera.Camera2D, width, height int) error {
	r.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	r.view = view
	return nil
}

func (r *Raster) Pixels() (*image.NRGBA, error) {
	if r.img == nil {
		return nil, ErrEmptyCanvas
	}
	return r.img, nil
}

func (r *Raster) Release() {
	r.img = nil
}

// pixelRect converts a world rect to the pixel rectangle it covers.
func (r *Raster) pixelRect(w math.Rect) image.Rectangle {
	lo := r.view.WorldToScreen(w.Min())
	hi := r.view.WorldToScreen(w.Max())
	return image.Rect(round(lo.X), round(lo.Y), round(hi.X), round(hi.Y))
}

func (r *Raster) FillRect(w math.Rect, c canvas.Color) {
	if r.img == nil {
		return
	}
	draw.Draw(r.img, r.pixelRect(w), image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

// StrokeRect draws the outline inside w.
func (r *Raster) StrokeRect(w math.Rect, thickness float32, c canvas.Color) {
	t := thickness
	if t*2 >= w.W || t*2 >= w.H {
		r.FillRect(w, c)
		return
	}
	r.FillRect(math.Rect{X: w.X, Y: w.Y, W: w.W, H: t}, c)
	r.FillRect(math.Rect{X: w.X, Y: w.Y + w.H - t, W: w.W, H: t}, c)
	r.FillRect(math.Rect{X: w.X, Y: w.Y + t, W: t, H: w.H - 2*t}, c)
	r.FillRect(math.Rect{X: w.X + w.W - t, Y: w.Y + t, W: t, H: w.H - 2*t}, c)
}

func (r *Raster) Line(a, b math.Vec2, thickness float32, c canvas.Color) {
	if r.img == nil {
		return
	}
	sa := r.view.WorldToScreen(a)
	sb := r.view.WorldToScreen(b)
	width := thickness * r.view.Zoom

	bounds := r.img.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), r.img, bounds)
	dasher := rasterx.NewDasher(bounds.Dx(), bounds.Dy(), scanner)
	dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(c.NRGBA())
	dasher.Start(rasterx.ToFixedP(float64(sa.X), float64(sa.Y)))
	dasher.Line(rasterx.ToFixedP(float64(sb.X), float64(sb.Y)))
	dasher.Stop(false)
	dasher.Draw()
}

func (r *Raster) Image(t canvas.Texture, dst math.Rect) {
	if r.img == nil {
		return
	}
	src, ok := t.(Source)
	if !ok {
		return
	}
	img := src.Source()
	if img == nil {
		return
	}
	xdraw.CatmullRom.Scale(r.img, r.pixelRect(dst), img, img.Bounds(), xdraw.Over, nil)
}

func round(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
