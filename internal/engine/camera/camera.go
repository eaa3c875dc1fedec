// Package camera provides the 2D view transform used by the canvas editor.
package camera

import (
	"github.com/Faultbox/paintbox/pkg/math"
)

// Camera2D maps world coordinates to the screen.
//
//	screen = (world - Target) * Zoom + Offset
type Camera2D struct {
	Zoom   float32   // always positive
	Target math.Vec2 // world point shown at Offset
	Offset math.Vec2 // screen point, usually the screen center

	MinZoom      float32 // lower clamp for Zoom
	WheelDivisor float32 // one wheel notch scales Zoom by 1 + 1/WheelDivisor
}

// New creates a camera at zoom 1 looking at target.
func New(target math.Vec2, minZoom, wheelDivisor float32) Camera2D {
	return Camera2D{
		Zoom:         1,
		Target:       target,
		MinZoom:      minZoom,
		WheelDivisor: wheelDivisor,
	}
}

// Identity returns a zoom 1 camera that maps origin to the screen's top-left
// corner. Export renders through it.
func Identity(origin math.Vec2) Camera2D {
	return Camera2D{Zoom: 1, Target: origin, MinZoom: 1, WheelDivisor: 1}
}

// SetViewport recomputes Offset for a screen of the given size.
func (c *Camera2D) SetViewport(width, height float32) {
	c.Offset = math.Vec2{X: width / 2, Y: height / 2}
}

// ApplyWheel scales Zoom by 1 + wheel/WheelDivisor, clamped to MinZoom.
func (c *Camera2D) ApplyWheel(wheel float32) {
	if wheel == 0 {
		return
	}
	c.Zoom *= 1 + wheel/c.WheelDivisor
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the view by a screen-space pointer delta so the world point
// under the pointer follows it.
func (c *Camera2D) Pan(screenDelta math.Vec2) {
	c.Target = c.Target.Sub(c.ToWorldDelta(screenDelta))
}

// ToWorldDelta converts a screen-space displacement into world units.
func (c Camera2D) ToWorldDelta(d math.Vec2) math.Vec2 {
	return d.Div(c.Zoom)
}

// ScreenToWorld converts a screen position to world coordinates.
func (c Camera2D) ScreenToWorld(p math.Vec2) math.Vec2 {
	return p.Sub(c.Offset).Div(c.Zoom).Add(c.Target)
}

// WorldToScreen converts a world position to screen coordinates.
func (c Camera2D) WorldToScreen(p math.Vec2) math.Vec2 {
	return p.Sub(c.Target).Scale(c.Zoom).Add(c.Offset)
}

// ViewMatrix returns the world-to-screen transform.
func (c Camera2D) ViewMatrix() math.Mat4 {
	return math.Translate(c.Offset.X, c.Offset.Y, 0).
		Mul(math.Scale(c.Zoom, c.Zoom, 1)).
		Mul(math.Translate(-c.Target.X, -c.Target.Y, 0))
}
