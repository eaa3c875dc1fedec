package canvas

import (
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/pkg/math"
)

type fakeTexture struct {
	w, h     int
	released int
}

func (t *fakeTexture) Size() (int, int) { return t.w, t.h }
func (t *fakeTexture) Release()         { t.released++ }

type paintCall struct {
	op        string
	rect      math.Rect
	a, b      math.Vec2
	thickness float32
	color     Color
}

type recordingPainter struct {
	calls []paintCall
}

func (p *recordingPainter) FillRect(r math.Rect, c Color) {
	p.calls = append(p.calls, paintCall{op: "fill", rect: r, color: c})
}

func (p *recordingPainter) StrokeRect(r math.Rect, thickness float32, c Color) {
	p.calls = append(p.calls, paintCall{op: "outline", rect: r, thickness: thickness, color: c})
}

func (p *recordingPainter) Line(a, b math.Vec2, thickness float32, c Color) {
	p.calls = append(p.calls, paintCall{op: "line", a: a, b: b, thickness: thickness, color: c})
}

func (p *recordingPainter) Image(_ Texture, dst math.Rect) {
	p.calls = append(p.calls, paintCall{op: "image", rect: dst})
}

func (p *recordingPainter) count(op string) int {
	n := 0
	for _, c := range p.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type recordingSink struct {
	cursors []Cursor
}

func (s *recordingSink) SetCursor(c Cursor) {
	s.cursors = append(s.cursors, c)
}

// harness drives an Editor whose world coordinates equal screen coordinates
// inside an 800x600 viewport at the screen origin.
type harness struct {
	e       *Editor
	tracker InputTracker
	vp      math.Rect
	sink    recordingSink
}

func newHarness() *harness {
	vp := math.Rect{W: 800, H: 600}
	cam := camera.New(vp.Center(), 0.01, 20)
	return &harness{
		e:  NewEditor(math.Rect{W: 1920, H: 1080}, cam, DefaultSettings()),
		vp: vp,
	}
}

// step runs one frame with the pointer at (x, y) and the left button in
// the given state.
func (h *harness) step(x, y float32, left bool) {
	var down Buttons
	down[ButtonLeft] = left
	h.e.Update(h.tracker.Next(math.Vec2{X: x, Y: y}, down, 0), h.vp, &h.sink)
}

func (h *harness) stepButtons(x, y float32, down Buttons, wheel float32) {
	h.e.Update(h.tracker.Next(math.Vec2{X: x, Y: y}, down, wheel), h.vp, &h.sink)
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}

func approxRect(a, b math.Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.W, b.W) && approx(a.H, b.H)
}
