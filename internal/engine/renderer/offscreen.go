package renderer

import (
	"image"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/engine/framebuffer"
	"github.com/Faultbox/paintbox/internal/export"
	"github.com/Faultbox/paintbox/pkg/math"
)

// Offscreen renders an export through the shared batch into a framebuffer.
// It can be used in the middle of a frame: the batch state of the frame is
// restored on Release.
type Offscreen struct {
	batch   *Batch
	fb      *framebuffer.Framebuffer
	restore []func()
}

var _ export.Target = (*Offscreen)(nil)

// NewOffscreen returns a target that paints with b.
func NewOffscreen(b *Batch) *Offscreen {
	return &Offscreen{batch: b}
}

func (o *Offscreen) Begin(view camera.Camera2D, width, height int) error {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return err
	}
	o.fb = fb

	restoreTarget := o.batch.PushTarget(width, height)
	fb.Bind()
	fb.Clear(0, 0, 0, 0)
	restoreView := o.batch.PushCamera(view)
	o.restore = []func(){restoreView, restoreTarget}
	return nil
}

func (o *Offscreen) Pixels() (*image.NRGBA, error) {
	if o.fb == nil {
		return nil, export.ErrEmptyCanvas
	}
	o.batch.Flush()
	w, h := o.fb.Size()
	return export.FromBottomUp(o.fb.ReadPixels(), w, h)
}

func (o *Offscreen) Release() {
	if o.fb == nil {
		return
	}
	// Flush into the framebuffer before unbinding it.
	o.batch.Flush()
	o.fb.Destroy()
	o.fb = nil
	for _, fn := range o.restore {
		fn()
	}
	o.restore = nil
}

func (o *Offscreen) FillRect(r math.Rect, c canvas.Color) { o.batch.FillRect(r, c) }

func (o *Offscreen) StrokeRect(r math.Rect, thickness float32, c canvas.Color) {
	o.batch.StrokeRect(r, thickness, c)
}

func (o *Offscreen) Line(a, b math.Vec2, thickness float32, c canvas.Color) {
	o.batch.Line(a, b, thickness, c)
}

func (o *Offscreen) Image(t canvas.Texture, dst math.Rect) { o.batch.Image(t, dst) }
