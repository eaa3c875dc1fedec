// Package window handles SDL2 window and OpenGL context creation.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Window wraps the SDL2 window, its OpenGL context and the system cursors.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	cursors   map[canvas.Cursor]*sdl.Cursor
	log       *zap.Logger
}

var _ canvas.CursorSink = (*Window)(nil)

// New creates a window with an OpenGL 4.1 core context.
func New(title string, cfg config.WindowConfig) (*Window, error) {
	w := &Window{
		cursors: make(map[canvas.Cursor]*sdl.Cursor),
		log:     logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// 4.1 core is the newest profile macOS offers.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		w.log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.log.Info("window created",
		zap.String("title", title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)
	return w, nil
}

// Close frees the cursors, destroys the window and shuts SDL2 down.
func (w *Window) Close() {
	w.log.Info("closing window")

	for c, cur := range w.cursors {
		sdl.FreeCursor(cur)
		delete(w.cursors, c)
	}
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}

// SwapBuffers presents the frame.
func (w *Window) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// Size returns the window size in screen coordinates, the space mouse
// positions are reported in.
func (w *Window) Size() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// DrawableSize returns the framebuffer size in pixels. It differs from
// Size on high-DPI displays.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// SetCursor switches the mouse cursor. System cursors are created on first
// use and kept until Close.
func (w *Window) SetCursor(c canvas.Cursor) {
	cur, ok := w.cursors[c]
	if !ok {
		cur = sdl.CreateSystemCursor(systemCursor(c))
		if cur == nil {
			w.log.Warn("failed to create cursor", zap.Stringer("cursor", c), zap.Error(sdl.GetError()))
			return
		}
		w.cursors[c] = cur
	}
	sdl.SetCursor(cur)
}

func systemCursor(c canvas.Cursor) sdl.SystemCursor {
	switch c {
	case canvas.CursorDefault:
		return sdl.SYSTEM_CURSOR_ARROW
	case canvas.CursorResizeAll:
		return sdl.SYSTEM_CURSOR_SIZEALL
	case canvas.CursorResizeNS:
		return sdl.SYSTEM_CURSOR_SIZENS
	case canvas.CursorResizeEW:
		return sdl.SYSTEM_CURSOR_SIZEWE
	case canvas.CursorResizeNWSE:
		return sdl.SYSTEM_CURSOR_SIZENWSE
	case canvas.CursorResizeNESW:
		return sdl.SYSTEM_CURSOR_SIZENESW
	default:
		panic(fmt.Sprintf("window: invalid cursor %d", c))
	}
}
