// Package canvas implements the editor engine: the object model, the scene,
// hit testing and direct manipulation, and the per-frame tool state machine.
// It has no platform dependencies; input arrives as Input snapshots and
// output leaves through a Painter and a CursorSink.
package canvas

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/pkg/math"
)

// Settings are the interaction constants.
type Settings struct {
	ResizeHitboxSize float32 // screen pixels
	HoverOutline     float32 // screen pixels
	CanvasBorder     float32 // world units
	StrokeWeightMin  float32
	StrokeWeightMax  float32
}

// DefaultSettings returns the stock interaction constants.
func DefaultSettings() Settings {
	return Settings{
		ResizeHitboxSize: 30,
		HoverOutline:     5,
		CanvasBorder:     5,
		StrokeWeightMin:  1,
		StrokeWeightMax:  20,
	}
}

// Editor is the complete editing state. The zero value is not usable; call
// NewEditor.
type Editor struct {
	Scene  Scene
	Camera camera.Camera2D
	Canvas math.Rect // export area in world coordinates

	Tool         Tool
	Color        Color
	StrokeWeight float32

	// Hovered is the paint index of the highlighted object, or -1.
	Hovered int

	Settings Settings

	rectStart math.Vec2
	pointer   math.Vec2 // world pointer of the last update
	gesture   bool      // press landed inside the viewport, release pending
	drawing   bool
	current   Stroke
	cursor    CursorTracker
}

// NewEditor creates an editor with an empty scene.
func NewEditor(canvas math.Rect, cam camera.Camera2D, s Settings) *Editor {
	e := &Editor{}
	e.Reset(canvas, cam, s)
	return e
}

// Reset initializes e in place. The reload path uses it on records that
// were allocated elsewhere.
func (e *Editor) Reset(canvas math.Rect, cam camera.Camera2D, s Settings) {
	e.Scene.Clear()
	*e = Editor{
		Scene:        e.Scene,
		Camera:       cam,
		Canvas:       canvas,
		Tool:         ToolMove,
		Color:        White,
		StrokeWeight: 5,
		Hovered:      -1,
		Settings:     s,
	}
}

// SetTool switches the active tool, abandoning any gesture in progress.
func (e *Editor) SetTool(t Tool) {
	if t >= toolCount {
		panic(fmt.Sprintf("canvas: invalid tool %d", t))
	}
	if t == e.Tool {
		return
	}
	e.cancelGesture()
	e.Tool = t
}

// SetStrokeWeight sets the weight for the next stroke, clamped to the
// configured range.
func (e *Editor) SetStrokeWeight(w float32) {
	e.StrokeWeight = math.Clamp(w, e.Settings.StrokeWeightMin, e.Settings.StrokeWeightMax)
}

// HitMargin is the resize hitbox size in world units at the current zoom.
func (e *Editor) HitMargin() float32 {
	return e.Settings.ResizeHitboxSize / e.Camera.Zoom
}

// Pointer returns the world position of the pointer at the last update.
func (e *Editor) Pointer() math.Vec2 {
	return e.pointer
}

// Cursor returns the last cursor requested from the platform.
func (e *Editor) Cursor() Cursor {
	return e.cursor.Current()
}

// ResetCursor forces the next cursor request through to the platform.
func (e *Editor) ResetCursor() {
	e.cursor.Reset()
}

// Update advances the editor by one frame. viewport is the screen area the
// canvas is drawn in; pointer activity outside it only finishes gestures.
func (e *Editor) Update(in Input, viewport math.Rect, sink CursorSink) {
	e.Camera.SetViewport(viewport.W, viewport.H)
	e.Camera.Offset = e.Camera.Offset.Add(viewport.Min())

	inside := viewport.Contains(in.Mouse)
	if !inside {
		e.cursor.Set(CursorDefault, sink)
		e.pointer = e.Camera.ScreenToWorld(in.Mouse)
		e.finishOutside(in)
		return
	}

	e.Camera.ApplyWheel(in.Wheel)
	if in.IsDown(ButtonPan) {
		e.Camera.Pan(in.Delta)
	}
	e.pointer = e.Camera.ScreenToWorld(in.Mouse)
	e.Hovered = -1

	cursor := CursorDefault
	switch e.Tool {
	case ToolMove:
		cursor = e.updateMove(in)
	case ToolRect:
		e.updateRect(in)
	case ToolDraw:
		e.updateDraw(in)
	case ToolChangeCanvas:
		e.updateChangeCanvas(in)
	default:
		panic(fmt.Sprintf("canvas: invalid tool %d", e.Tool))
	}
	e.cursor.Set(cursor, sink)
}

func (e *Editor) updateMove(in Input) Cursor {
	if in.IsPressed(ButtonMove) {
		e.gesture = true
	}
	if in.IsReleased(ButtonMove) {
		e.gesture = false
	}

	dragging := e.gesture && in.IsDown(ButtonMove)

	// While dragging, probe where the pointer was last frame: the dragged
	// edge followed it there, so a fast move cannot outrun the hitbox.
	probe := e.pointer
	if dragging {
		probe = e.Camera.ScreenToWorld(in.Mouse.Sub(in.Delta))
	}

	i, region := e.Scene.HitTest(probe, e.HitMargin())
	e.Hovered = i
	if i < 0 {
		return CursorDefault
	}
	if dragging {
		o := e.Scene.At(i)
		o.SetBounds(region.Deform(o.Bounds(), e.Camera.ToWorldDelta(in.Delta)))
		e.Scene.Touch()
	}
	return region.Cursor()
}

func (e *Editor) updateRect(in Input) {
	if in.IsPressed(ButtonRect) {
		e.rectStart = e.pointer
		e.gesture = true
	}
	if in.IsReleased(ButtonRect) && e.gesture {
		e.gesture = false
		e.Scene.Append(NewRect(math.RectFromPoints(e.rectStart, e.pointer), e.Color))
	}
}

func (e *Editor) updateDraw(in Input) {
	if in.IsPressed(ButtonDraw) {
		e.gesture = true
		e.drawing = true
		e.current = Stroke{Color: e.Color, Weight: e.StrokeWeight}
	}
	if e.drawing && in.IsDown(ButtonDraw) {
		e.current.Append(e.pointer)
	}
	if in.IsReleased(ButtonDraw) && e.drawing {
		e.Scene.Append(NewStroke(e.current))
		e.current = Stroke{}
		e.drawing = false
		e.gesture = false
	}
}

func (e *Editor) updateChangeCanvas(in Input) {
	if in.IsPressed(ButtonRect) {
		e.rectStart = e.pointer
		e.gesture = true
	}
	if in.IsReleased(ButtonRect) && e.gesture {
		e.gesture = false
		e.Canvas = math.RectFromPoints(e.rectStart, e.pointer)
		logger.Debug("canvas bounds changed",
			zap.Float32("x", e.Canvas.X), zap.Float32("y", e.Canvas.Y),
			zap.Float32("w", e.Canvas.W), zap.Float32("h", e.Canvas.H))
	}
}

// finishOutside handles a frame with the pointer outside the viewport.
// Strokes keep sampling while the button is held; any gesture released out
// here is dropped.
func (e *Editor) finishOutside(in Input) {
	if e.Tool == ToolDraw && e.drawing && in.IsDown(ButtonDraw) {
		e.current.Append(e.pointer)
	}
	var b Button
	switch e.Tool {
	case ToolMove:
		b = ButtonMove
	case ToolRect, ToolChangeCanvas:
		b = ButtonRect
	case ToolDraw:
		b = ButtonDraw
	default:
		panic(fmt.Sprintf("canvas: invalid tool %d", e.Tool))
	}
	if in.IsReleased(b) && e.gesture {
		logger.Debug("gesture released outside viewport", zap.Stringer("tool", e.Tool))
		e.cancelGesture()
	}
}

func (e *Editor) cancelGesture() {
	e.gesture = false
	e.drawing = false
	e.current = Stroke{}
}

// RectPreview returns the rectangle a Rect or ChangeCanvas gesture would
// commit if released now.
func (e *Editor) RectPreview() (math.Rect, bool) {
	if !e.gesture || (e.Tool != ToolRect && e.Tool != ToolChangeCanvas) {
		return math.Rect{}, false
	}
	return math.RectFromPoints(e.rectStart, e.pointer), true
}

// CurrentStroke returns the stroke being captured.
func (e *Editor) CurrentStroke() (Stroke, bool) {
	return e.current, e.drawing
}

// OpenImage replaces the scene with a single image object and fits the
// canvas to it.
func (e *Editor) OpenImage(name string, tex Texture) {
	e.cancelGesture()
	e.Scene.Clear()
	o := NewImage(name, tex)
	e.Scene.Append(o)
	e.Canvas = o.Bounds()
	e.Hovered = -1
}

// AddImage appends an image object at the origin.
func (e *Editor) AddImage(name string, tex Texture) {
	e.Scene.Append(NewImage(name, tex))
}

// Remove deletes the object at paint index i.
func (e *Editor) Remove(i int) {
	e.Scene.Remove(i)
	if e.Hovered >= e.Scene.Len() {
		e.Hovered = -1
	}
}

// HoveredObject returns the highlighted object, if any.
func (e *Editor) HoveredObject() (*Object, bool) {
	if e.Hovered < 0 || e.Hovered >= e.Scene.Len() {
		return nil, false
	}
	return e.Scene.At(e.Hovered), true
}
