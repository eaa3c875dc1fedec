package app

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/engine/dialog"
	"github.com/Faultbox/paintbox/internal/export"
	"github.com/Faultbox/paintbox/pkg/math"
)

type fakeTexture struct {
	w, h     int
	released int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Release()         { t.released++ }

type messageBox struct {
	title, message string
}

type fakeDialogs struct {
	path   string
	err    error
	asked  []string
	errors []messageBox
}

func (d *fakeDialogs) OpenFile(title string, _ ...dialog.Filter) (string, error) {
	d.asked = append(d.asked, title)
	return d.path, d.err
}

func (d *fakeDialogs) SaveFile(title string, _ ...dialog.Filter) (string, error) {
	d.asked = append(d.asked, title)
	return d.path, d.err
}

func (d *fakeDialogs) Error(title, message string) {
	d.errors = append(d.errors, messageBox{title, message})
}

var errNoImage = errors.New("no such image")

type fakeImages struct {
	textures map[string]*fakeTexture
	loaded   []string
}

func (im *fakeImages) Load(path string) (canvas.Texture, error) {
	im.loaded = append(im.loaded, path)
	tex, ok := im.textures[path]
	if !ok {
		return nil, errNoImage
	}
	return tex, nil
}

// fakeCanvas records fills and counts transform pushes.
type fakeCanvas struct {
	fills   []canvas.Color
	texts   []string
	cameras int
	clips   int
	depth   int
}

func (c *fakeCanvas) FillRect(_ math.Rect, col canvas.Color)         { c.fills = append(c.fills, col) }
func (c *fakeCanvas) StrokeRect(math.Rect, float32, canvas.Color)    {}
func (c *fakeCanvas) Line(_, _ math.Vec2, _ float32, _ canvas.Color) {}
func (c *fakeCanvas) Image(canvas.Texture, math.Rect)                {}
func (c *fakeCanvas) Gradient(math.Rect, canvas.Color, canvas.Color, canvas.Color, canvas.Color) {
}

func (c *fakeCanvas) Text(_ math.Vec2, s string, _ float32, _ canvas.Color) {
	c.texts = append(c.texts, s)
}

func (c *fakeCanvas) PushCamera(camera.Camera2D) func() {
	c.cameras++
	c.depth++
	return func() { c.depth-- }
}

func (c *fakeCanvas) PushScissor(math.Rect) func() {
	c.clips++
	c.depth++
	return func() { c.depth-- }
}

// Ten pixels per rune, twenty high.
func (c *fakeCanvas) Measure(s string, _ float32) math.Vec2 {
	return math.Vec2{X: float32(len(s)) * 10, Y: 20}
}

func (c *fakeCanvas) filled(col canvas.Color) bool {
	for _, f := range c.fills {
		if f == col {
			return true
		}
	}
	return false
}

type nopSink struct{}

func (nopSink) SetCursor(canvas.Cursor) {}

type harness struct {
	app     *App
	dialogs *fakeDialogs
	images  *fakeImages
	draw    *fakeCanvas
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	a, err := New(config.Default())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	h := &harness{
		app:     a,
		dialogs: &fakeDialogs{},
		images:  &fakeImages{textures: map[string]*fakeTexture{}},
		draw:    &fakeCanvas{},
	}
	a.Bind(Services{
		Dialogs: h.dialogs,
		Images:  h.images,
		Draw:    h.draw,
		Target:  func() export.Target { return export.NewRaster() },
		Log:     zap.NewNop(),
	})
	return h
}

// noSurface is an export target whose surface can never be allocated.
type noSurface struct {
	*export.Raster
}

func (noSurface) Begin(camera.Camera2D, int, int) error {
	return errors.New("framebuffer 100000x100000 exceeds GL_MAX_TEXTURE_SIZE")
}

var screen = math.Vec2{X: 1280, Y: 720}

// click runs one frame with the left button going down at (x, y) and one
// with it released.
func (h *harness) click(x, y float32) {
	in := canvas.Input{Mouse: math.Vec2{X: x, Y: y}}
	in.Down[canvas.ButtonLeft] = true
	in.Pressed[canvas.ButtonLeft] = true
	h.app.Frame(in, screen, nopSink{})

	in.Down[canvas.ButtonLeft] = false
	in.Pressed[canvas.ButtonLeft] = false
	in.Released[canvas.ButtonLeft] = true
	h.app.Frame(in, screen, nopSink{})
}

func (h *harness) idle() {
	h.app.Frame(canvas.Input{Mouse: math.Vec2{X: 5, Y: 700}}, screen, nopSink{})
}
