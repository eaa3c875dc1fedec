package ui2d

import (
	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/pkg/math"
)

// InputState is the pointer state widgets see during one frame.
type InputState struct {
	Mouse math.Vec2

	LeftDown     bool
	LeftPressed  bool
	LeftReleased bool

	// clickTaken is set once a widget has claimed this frame's press so
	// overlapping widgets do not both fire.
	clickTaken bool
}

// Set loads the frame snapshot.
func (i *InputState) Set(in canvas.Input) {
	i.Mouse = in.Mouse
	i.LeftDown = in.IsDown(canvas.ButtonLeft)
	i.LeftPressed = in.IsPressed(canvas.ButtonLeft)
	i.LeftReleased = in.IsReleased(canvas.ButtonLeft)
	i.clickTaken = false
}

// MouseIn reports whether the pointer is inside r.
func (i *InputState) MouseIn(r math.Rect) bool {
	return r.Contains(i.Mouse)
}

// takeClick claims this frame's press for one widget.
func (i *InputState) takeClick() bool {
	if !i.LeftPressed || i.clickTaken {
		return false
	}
	i.clickTaken = true
	return true
}
