package app

import (
	"errors"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/engine/dialog"
	"github.com/Faultbox/paintbox/internal/engine/input"
	"github.com/Faultbox/paintbox/internal/engine/renderer"
	"github.com/Faultbox/paintbox/internal/engine/texture"
	"github.com/Faultbox/paintbox/internal/engine/ui2d"
	"github.com/Faultbox/paintbox/internal/export"
	"github.com/Faultbox/paintbox/internal/platform"
	"github.com/Faultbox/paintbox/internal/reload"
	"github.com/Faultbox/paintbox/pkg/math"
)

// current is the record this generation of the code works on.
var current *App

// gpu holds the GL resources of the editor. They outlive reloads with the
// record.
type gpu struct {
	font  *ui2d.Font
	batch *renderer.Batch
}

func (g *gpu) close() {
	g.batch.Close()
}

// gpuImages decodes files and uploads them.
type gpuImages struct{}

func (gpuImages) Load(path string) (canvas.Texture, error) {
	img, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	return renderer.Upload(img), nil
}

// Module returns the entry points for linking the editor into the host.
func Module() reload.Module[platform.Env] {
	return reload.Module[platform.Env]{
		Init:       Init,
		PreReload:  PreReload,
		PostReload: PostReload,
		Update:     Update,
		Shutdown:   Shutdown,
	}
}

// Init builds the editor for a cold start.
func Init(env *platform.Env) unsafe.Pointer {
	a, err := New(env.Config)
	if err != nil {
		env.Log.Error("invalid editor config; using defaults", zap.Error(err))
		a, _ = New(config.Default())
	}
	if err := a.attach(env); err != nil {
		env.Log.Fatal("editor init failed", zap.Error(err))
	}

	if path := env.Config.Editor.StartImage; path != "" {
		if err := a.OpenPath(path); err != nil {
			env.Log.Warn("could not open start image", zap.String("path", path), zap.Error(err))
		}
	}

	current = a
	return unsafe.Pointer(a)
}

// PreReload hands the record to the host.
func PreReload() unsafe.Pointer {
	p := unsafe.Pointer(current)
	current = nil
	return p
}

// PostReload adopts the record of the previous generation.
func PostReload(state unsafe.Pointer, env *platform.Env) {
	a, err := reload.Adopt[App](state)
	if errors.Is(err, reload.ErrShrink) {
		env.Log.Warn("state record is newer than this build", zap.Error(err))
	}
	if err := a.attach(env); err != nil {
		env.Log.Fatal("editor reload failed", zap.Error(err))
	}
	// The platform cursor may have changed under the old code.
	a.Editor.ResetCursor()
	current = a
}

// Update runs one frame.
func Update(env *platform.Env) reload.Status {
	return current.Update(env)
}

// Shutdown releases the scene and the GL resources.
func Shutdown() {
	if current == nil {
		return
	}
	current.Close()
	if current.gpu != nil {
		current.gpu.close()
	}
	current = nil
}

// attach creates the GL resources on first use and binds the services of
// this code generation.
func (a *App) attach(env *platform.Env) error {
	if a.gpu == nil {
		if err := renderer.InitGL(); err != nil {
			return err
		}
		font := ui2d.NewFont()
		batch, err := renderer.NewBatch(font)
		if err != nil {
			return err
		}
		a.gpu = &gpu{font: font, batch: batch}
	}

	batch := a.gpu.batch
	a.Bind(Services{
		Dialogs: dialog.Native{},
		Images:  gpuImages{},
		Draw:    batch,
		Target:  func() export.Target { return renderer.NewOffscreen(batch) },
		Log:     env.Log.Named("app"),
	})
	return nil
}

// Update polls input, draws a frame and presents it.
func (a *App) Update(env *platform.Env) reload.Status {
	f := env.Input.Poll()
	if f.Quit || f.KeyPressed(input.KeyQuit) {
		return reload.StatusQuit
	}
	if f.KeyPressed(input.KeyDebug) {
		a.UI.Debug = !a.UI.Debug
	}

	in := a.Tracker.Next(f.Mouse, f.Buttons, f.Wheel)
	w, h := env.Window.Size()
	dw, _ := env.Window.DrawableSize()
	scale := float32(1)
	if w > 0 {
		scale = float32(dw) / float32(w)
	}

	b := a.gpu.batch
	b.Begin(w, h, scale)
	b.Clear(canvas.Black)
	a.Frame(in, math.Vec2{X: float32(w), Y: float32(h)}, env.Window)
	b.End()
	env.Window.SwapBuffers()

	if f.KeyPressed(input.KeyReload) {
		return reload.StatusReload
	}
	return reload.StatusContinue
}
