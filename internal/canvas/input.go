package canvas

import (
	"github.com/Faultbox/paintbox/pkg/math"
)

// Button is a pointer button.
type Button uint8

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle

	buttonCount
)

// Button roles.
const (
	ButtonMove = ButtonLeft
	ButtonRect = ButtonLeft
	ButtonDraw = ButtonLeft
	ButtonPan  = ButtonRight
)

// Buttons holds one flag per pointer button.
type Buttons [buttonCount]bool

// Input is the pointer snapshot for one frame, in screen coordinates.
type Input struct {
	Mouse math.Vec2
	Delta math.Vec2 // movement since the previous frame
	Wheel float32   // vertical wheel notches, positive away from the user

	Down     Buttons
	Pressed  Buttons // went down this frame
	Released Buttons // went up this frame
}

// IsDown reports whether b is held.
func (in *Input) IsDown(b Button) bool { return in.Down[b] }

// IsPressed reports whether b went down this frame.
func (in *Input) IsPressed(b Button) bool { return in.Pressed[b] }

// IsReleased reports whether b went up this frame.
func (in *Input) IsReleased(b Button) bool { return in.Released[b] }

// InputTracker turns raw per-frame pointer samples into Input snapshots
// with deltas and press/release edges.
type InputTracker struct {
	prevDown  Buttons
	prevMouse math.Vec2
	primed    bool
}

// Next builds the snapshot for a frame. The first frame reports a zero delta.
func (t *InputTracker) Next(mouse math.Vec2, down Buttons, wheel float32) Input {
	in := Input{
		Mouse: mouse,
		Wheel: wheel,
		Down:  down,
	}
	if t.primed {
		in.Delta = mouse.Sub(t.prevMouse)
	}
	for b := range down {
		in.Pressed[b] = down[b] && !t.prevDown[b]
		in.Released[b] = !down[b] && t.prevDown[b]
	}

	t.prevDown = down
	t.prevMouse = mouse
	t.primed = true
	return in
}
