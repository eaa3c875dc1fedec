// Package app is the editor module: the state record the host keeps across
// reloads, the sidebar, and the glue between the canvas engine and the
// platform.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/engine/camera"
	"github.com/Faultbox/paintbox/internal/engine/dialog"
	"github.com/Faultbox/paintbox/internal/engine/ui2d"
	"github.com/Faultbox/paintbox/internal/export"
	"github.com/Faultbox/paintbox/internal/reload"
	"github.com/Faultbox/paintbox/pkg/math"
)

// Dialogs asks the user for paths and reports failures.
type Dialogs interface {
	OpenFile(title string, filters ...dialog.Filter) (string, error)
	SaveFile(title string, filters ...dialog.Filter) (string, error)
	Error(title, message string)
}

// Images turns image files into textures the drawing backend can paint.
type Images interface {
	Load(path string) (canvas.Texture, error)
}

// Canvas is the drawing backend of a frame: screen-space widgets, scene
// painting, and the transforms between them.
type Canvas interface {
	ui2d.Surface
	canvas.Painter
	PushCamera(cam camera.Camera2D) func()
	PushScissor(r math.Rect) func()
	Measure(s string, scale float32) math.Vec2
}

// Services are the collaborators of the editor. They are code, not state,
// so they are rebound after every reload.
type Services struct {
	Dialogs Dialogs
	Images  Images
	Draw    Canvas
	// Target returns a fresh offscreen surface for one export.
	Target func() export.Target
	Log    *zap.Logger
}

// Picker is the color picker state.
type Picker struct {
	Open bool
	Hue  float32   // fraction of the hue circle
	Pos  math.Vec2 // marker offset in the saturation/value square
}

// App is the state record. Fields are only ever appended.
type App struct {
	reload.Header

	Editor  canvas.Editor
	UI      ui2d.State
	Picker  Picker
	Tracker canvas.InputTracker

	Sidebar float32 // sidebar width in logical pixels
	Export  export.Options

	gpu *gpu

	svc Services
	ui  *ui2d.Context
}

// New builds a cold-start record from cfg.
func New(cfg *config.Config) (*App, error) {
	a := reload.New[App]()
	if err := a.configure(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) configure(cfg *config.Config) error {
	e := cfg.Editor
	col, err := canvas.ParseHex(e.Color)
	if err != nil {
		return fmt.Errorf("editor.color: %w", err)
	}

	cam := camera.New(math.Vec2{}, e.MinZoom, e.ZoomWheelDivisor)
	bounds := math.Rect{W: e.CanvasWidth, H: e.CanvasHeight}
	a.Editor.Reset(bounds, cam, canvas.Settings{
		ResizeHitboxSize: e.ResizeHitboxSize,
		HoverOutline:     e.HoverOutline,
		CanvasBorder:     e.CanvasBorder,
		StrokeWeightMin:  e.StrokeWeightMin,
		StrokeWeightMax:  e.StrokeWeightMax,
	})
	// Start looking at the middle of the canvas.
	a.Editor.Camera.Target = bounds.Center()
	a.Editor.Color = col
	a.Editor.SetStrokeWeight(e.StrokeWeight)

	a.Sidebar = float32(e.SidebarWidth)
	format, err := export.ParseFormat(cfg.Export.DefaultFormat)
	if err != nil {
		return fmt.Errorf("export.default_format: %w", err)
	}
	a.Export = export.Options{JPEGQuality: cfg.Export.JPEGQuality, DefaultFormat: format}
	return nil
}

// Bind attaches the services. The widget context is rebuilt around the
// persistent widget state.
func (a *App) Bind(svc Services) {
	a.svc = svc
	a.ui = ui2d.NewContext(&a.UI, svc.Draw, svc.Draw.Measure)
}

// Frame runs the editor for one frame of input on a screen of the given
// logical size.
func (a *App) Frame(in canvas.Input, screen math.Vec2, sink canvas.CursorSink) {
	sidebar := math.Rect{W: a.Sidebar, H: screen.Y}
	viewport := math.Rect{X: a.Sidebar, W: screen.X - a.Sidebar, H: screen.Y}

	if sidebar.Contains(in.Mouse) {
		// Only the object list highlights while the pointer is here.
		a.Editor.Hovered = -1
	}

	a.ui.Begin(in)
	restore := a.svc.Draw.PushScissor(sidebar)
	a.drawSidebar(sidebar)
	restore()
	a.ui.End()

	a.drawCanvas(in, viewport, sink)
}

func (a *App) drawCanvas(in canvas.Input, viewport math.Rect, sink canvas.CursorSink) {
	if viewport.W <= 0 || viewport.H <= 0 {
		return
	}
	d := a.svc.Draw
	restoreClip := d.PushScissor(viewport)
	defer restoreClip()

	a.Editor.Update(in, viewport, sink)

	restoreCam := d.PushCamera(a.Editor.Camera)
	canvas.DrawScene(d, &a.Editor.Scene)
	a.Editor.DrawOverlay(d)
	restoreCam()
}

// Close releases every object.
func (a *App) Close() {
	a.Editor.Scene.Clear()
}
