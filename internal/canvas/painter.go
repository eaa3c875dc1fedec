package canvas

import (
	"fmt"

	"github.com/Faultbox/paintbox/pkg/math"
)

// Painter draws primitives in world coordinates. The caller sets up the
// camera transform and clipping before handing it to DrawScene.
type Painter interface {
	FillRect(r math.Rect, c Color)
	StrokeRect(r math.Rect, thickness float32, c Color)
	Line(a, b math.Vec2, thickness float32, c Color)
	Image(t Texture, dst math.Rect)
}

// DrawScene paints every object in paint order.
func DrawScene(p Painter, s *Scene) {
	for _, o := range s.Objects() {
		DrawObject(p, o)
	}
}

// DrawObject paints a single object.
func DrawObject(p Painter, o *Object) {
	switch o.Kind {
	case KindImage:
		if o.Texture != nil {
			p.Image(o.Texture, o.Bounds())
		}
	case KindRect:
		p.FillRect(o.Bounds(), o.Color)
	case KindStroke:
		DrawStroke(p, o.Stroke)
	default:
		panic(fmt.Sprintf("canvas: invalid object kind %d", o.Kind))
	}
}

// DrawStroke paints a stroke as thick segments between consecutive points.
// Fewer than two points draw nothing.
func DrawStroke(p Painter, s Stroke) {
	s.Segments(func(a, b math.Vec2) {
		p.Line(a, b, s.Weight, s.Color)
	})
}

// DrawOverlay paints the editing aids on top of the scene: the live preview
// of the active gesture, the hover outline and the canvas border.
func (e *Editor) DrawOverlay(p Painter) {
	if r, ok := e.RectPreview(); ok {
		switch e.Tool {
		case ToolRect:
			p.FillRect(r, e.Color)
		case ToolChangeCanvas:
			p.StrokeRect(r, e.Settings.CanvasBorder, White)
		}
	}
	if s, ok := e.CurrentStroke(); ok {
		DrawStroke(p, s)
	}
	if o, ok := e.HoveredObject(); ok {
		p.StrokeRect(o.Bounds(), e.Settings.HoverOutline/e.Camera.Zoom, White)
	}
	p.StrokeRect(e.Canvas, e.Settings.CanvasBorder, White)
}
