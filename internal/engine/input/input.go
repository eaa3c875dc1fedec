// Package input polls SDL2 events into per-frame pointer and key samples.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/pkg/math"
)

// Key is a keyboard key the editor reacts to.
type Key uint8

// Keys the editor binds.
const (
	KeyDebug  Key = iota // D: toggle UI debug outlines
	KeyReload            // F5: reload code
	KeyQuit              // Escape

	keyCount
)

// Frame is the raw input gathered during one frame.
type Frame struct {
	Quit    bool
	Mouse   math.Vec2
	Buttons canvas.Buttons
	Wheel   float32
	Keys    [keyCount]bool // pressed this frame, repeats excluded
}

// KeyPressed reports whether k went down this frame.
func (f *Frame) KeyPressed(k Key) bool {
	return f.Keys[k]
}

// Input accumulates SDL events between frames.
type Input struct {
	mouse     math.Vec2
	down      canvas.Buttons
	pendingUp canvas.Buttons
}

// New creates an input poller.
func New() *Input {
	return &Input{}
}

// Poll drains the SDL event queue.
func (i *Input) Poll() Frame {
	var events []sdl.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, event)
	}
	return i.apply(events)
}

// apply folds events into a frame. A button pressed and released within
// the same frame is reported down now and up on the next frame, so the
// click is not lost.
func (i *Input) apply(events []sdl.Event) Frame {
	var f Frame
	for b, up := range i.pendingUp {
		if up {
			i.down[b] = false
			i.pendingUp[b] = false
		}
	}
	pressed := canvas.Buttons{}

	for _, event := range events {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			f.Quit = true

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if k, ok := keyFor(e.Keysym.Scancode); ok {
				f.Keys[k] = true
			}

		case *sdl.MouseMotionEvent:
			i.mouse = math.Vec2{X: float32(e.X), Y: float32(e.Y)}

		case *sdl.MouseButtonEvent:
			i.mouse = math.Vec2{X: float32(e.X), Y: float32(e.Y)}
			b, ok := buttonFor(e.Button)
			if !ok {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.down[b] = true
				pressed[b] = true
			} else if pressed[b] {
				i.pendingUp[b] = true
			} else {
				i.down[b] = false
			}

		case *sdl.MouseWheelEvent:
			y := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			f.Wheel += y
		}
	}

	f.Mouse = i.mouse
	f.Buttons = i.down
	return f
}

func buttonFor(b uint8) (canvas.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return canvas.ButtonLeft, true
	case sdl.BUTTON_RIGHT:
		return canvas.ButtonRight, true
	case sdl.BUTTON_MIDDLE:
		return canvas.ButtonMiddle, true
	default:
		return 0, false
	}
}

func keyFor(sc sdl.Scancode) (Key, bool) {
	switch sc {
	case sdl.SCANCODE_D:
		return KeyDebug, true
	case sdl.SCANCODE_F5:
		return KeyReload, true
	case sdl.SCANCODE_ESCAPE:
		return KeyQuit, true
	default:
		return 0, false
	}
}
